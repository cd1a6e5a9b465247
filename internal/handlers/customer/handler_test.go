package customer_test

import (
	"encoding/json"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/service"
	"hotel/internal/handlers/customer"
	"hotel/internal/storage"
	"hotel/internal/storage/memory"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() http.Handler {
	otel := mocks.NewOtel()
	stores := storage.Stores{Customers: memory.New(model.EntityName)}
	handler := customer.New(service.New(stores, otel), otel)

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestCustomerEndpoints(t *testing.T) {
	router := newRouter()

	recorder := do(router, http.MethodPost, "/v1/customers", `{"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Data.ID)
	assert.Equal(t, "Ada", created.Data.Name)

	recorder = do(router, http.MethodGet, "/v1/customers/"+created.Data.ID, "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = do(router, http.MethodGet, "/v1/customers", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), created.Data.ID)

	recorder = do(router, http.MethodDelete, "/v1/customers/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = do(router, http.MethodGet, "/v1/customers/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Customer not found: `+created.Data.ID+`"}`, recorder.Body.String())
}

func TestCreateCustomerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"email":"ada@example.com"}`},
		{name: "invalid email", body: `{"name":"Ada","email":"not-an-email"}`},
		{name: "missing email", body: `{"name":"Ada"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := do(newRouter(), http.MethodPost, "/v1/customers", tt.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestDeleteUnknownCustomer(t *testing.T) {
	recorder := do(newRouter(), http.MethodDelete, "/v1/customers/c-1", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Customer not found: c-1"}`, recorder.Body.String())
}
