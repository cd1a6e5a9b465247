package http_test

import (
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	bookingService "hotel/internal/domains/booking/service"
	customerModel "hotel/internal/domains/customer/model"
	customerService "hotel/internal/domains/customer/service"
	roomModel "hotel/internal/domains/room/model"
	roomService "hotel/internal/domains/room/service"
	bookingHandler "hotel/internal/handlers/booking"
	customerHandler "hotel/internal/handlers/customer"
	roomHandler "hotel/internal/handlers/room"
	"hotel/internal/storage"
	"hotel/internal/storage/memory"
	"hotel/shared/cache"
	"hotel/shared/constant"
	transport "hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(cfg *config.Config) *transport.HTTP {
	otel := mocks.NewOtel()
	stores := storage.Stores{
		Rooms:     storage.Synchronized(memory.New(roomModel.EntityName)),
		Customers: storage.Synchronized(memory.New(customerModel.EntityName)),
		Bookings:  storage.Synchronized(memory.New(bookingModel.EntityName)),
	}

	handlers := router.DomainHandlers{
		Room:     roomHandler.New(roomService.New(stores, otel), otel),
		Customer: customerHandler.New(customerService.New(stores, otel), otel),
		Booking:  bookingHandler.New(bookingService.New(stores, kafka.New(cfg), cfg, otel), otel),
	}

	appMiddleware := middleware.NewAppMiddleware(otel, cfg, cache.NewRedisCache(nil, otel))
	r := router.New(handlers, middleware.NewAuthMiddleware(otel, cfg))

	return transport.New(cfg, r, appMiddleware)
}

func serve(server http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	return recorder
}

func TestHealth(t *testing.T) {
	server := newServer(&config.Config{})

	recorder := serve(server, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"OK"}`, recorder.Body.String())
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestRoutes(t *testing.T) {
	server := newServer(&config.Config{})

	recorder := serve(server, httptest.NewRequest(http.MethodPost, "/v1/rooms",
		strings.NewReader(`{"number":"101","size":2,"price":150}`)))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = serve(server, httptest.NewRequest(http.MethodGet, "/v1/customers/missing", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Customer not found: missing"}`, recorder.Body.String())

	recorder = serve(server, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = serve(server, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAPIKeyGuardsVersionedRoutes(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.APIKey = "secret"
	server := newServer(cfg)

	recorder := serve(server, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	request.Header.Set(constant.RequestHeaderAPIKey, "secret")
	recorder = serve(server, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = serve(server, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://hotel.example"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}
	server := newServer(cfg)

	request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	request.Header.Set("Origin", "https://hotel.example")
	recorder := serve(server, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://hotel.example", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerDoc(t *testing.T) {
	server := newServer(&config.Config{})

	recorder := serve(server, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "/v1/rooms/{id}")
}
