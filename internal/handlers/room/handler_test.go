package room_test

import (
	"encoding/json"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/service"
	"hotel/internal/handlers/room"
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

type roomBody struct {
	Data struct {
		ID     string `json:"id"`
		Number string `json:"number"`
		Size   int    `json:"size"`
		Price  int    `json:"price"`
	} `json:"data"`
}

func newRouter() http.Handler {
	otel := mocks.NewOtel()
	stores := storage.Stores{Rooms: memory.New(model.EntityName)}
	handler := room.New(service.New(stores, otel), otel)

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func create(t *testing.T, router http.Handler) roomBody {
	t.Helper()

	recorder := do(t, router, http.MethodPost, "/v1/rooms", `{"number":"101","size":2,"price":150}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var body roomBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestCreateRoom(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "created", body: `{"number":"101","size":2,"price":150}`, wantCode: http.StatusCreated},
		{name: "missing price", body: `{"number":"101","size":2}`, wantCode: http.StatusBadRequest},
		{name: "zero size", body: `{"number":"101","size":0,"price":150}`, wantCode: http.StatusBadRequest},
		{name: "negative price", body: `{"number":"101","size":2,"price":-1}`, wantCode: http.StatusBadRequest},
		{name: "wrong type", body: `{"number":"101","size":"two","price":150}`, wantCode: http.StatusBadRequest},
		{name: "largest price", body: `{"number":"101","size":2,"price":2147483647}`, wantCode: http.StatusCreated},
		{name: "price above column range", body: `{"number":"101","size":2,"price":2147483648}`, wantCode: http.StatusBadRequest},
		{name: "price overflows int", body: `{"number":"101","size":2,"price":9223372036854775807}`, wantCode: http.StatusBadRequest},
		{name: "size above column range", body: `{"number":"101","size":2147483648,"price":150}`, wantCode: http.StatusBadRequest},
		{name: "malformed json", body: `{`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := do(t, newRouter(), http.MethodPost, "/v1/rooms", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestGetRoom(t *testing.T) {
	router := newRouter()
	created := create(t, router)

	recorder := do(t, router, http.MethodGet, "/v1/rooms/"+created.Data.ID, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var got roomBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, created, got)

	recorder = do(t, router, http.MethodGet, "/v1/rooms/42", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Room not found: 42"}`, recorder.Body.String())
}

func TestGetRooms(t *testing.T) {
	router := newRouter()

	recorder := do(t, router, http.MethodGet, "/v1/rooms", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":[]}`, recorder.Body.String())

	create(t, router)
	create(t, router)

	recorder = do(t, router, http.MethodGet, "/v1/rooms", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}

func TestUpdateRoom(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			router := newRouter()
			created := create(t, router)

			recorder := do(t, router, method, "/v1/rooms/"+created.Data.ID, `{"price":175}`)
			require.Equal(t, http.StatusOK, recorder.Code)

			var got roomBody
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
			assert.Equal(t, 175, got.Data.Price)
			assert.Equal(t, "101", got.Data.Number)
			assert.Equal(t, 2, got.Data.Size)

			recorder = do(t, router, method, "/v1/rooms/"+created.Data.ID, `{"size":0}`)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			recorder = do(t, router, method, "/v1/rooms/"+created.Data.ID, `{"price":9223372036854775807}`)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.JSONEq(t, `{"error":"price must be less than or equal to 2147483647"}`, recorder.Body.String())

			recorder = do(t, router, method, "/v1/rooms/nope", `{"price":175}`)
			assert.Equal(t, http.StatusNotFound, recorder.Code)
			assert.JSONEq(t, `{"error":"Room not found: nope"}`, recorder.Body.String())
		})
	}
}

func TestDeleteRoom(t *testing.T) {
	router := newRouter()
	created := create(t, router)

	recorder := do(t, router, http.MethodDelete, "/v1/rooms/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	recorder = do(t, router, http.MethodDelete, "/v1/rooms/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
