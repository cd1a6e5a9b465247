package middleware_test

import (
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	const key = "limiter:10.0.0.1:test-agent"

	tests := []struct {
		name       string
		enable     bool
		setupMock  func(m *cacheMocks.MockRedisCache)
		wantCode   int
		wantRemain string
	}{
		{
			name:     "disabled",
			enable:   false,
			wantCode: http.StatusOK,
		},
		{
			name:   "first request",
			enable: true,
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(fmt.Errorf("get: %w", cache.Nil))
				m.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)
			},
			wantCode:   http.StatusOK,
			wantRemain: "1",
		},
		{
			name:   "limit exceeded",
			enable: true,
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(
					func(_ any, _ string, value any) error {
						*value.(*int) = 2

						return nil
					})
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:   "cache unavailable",
			enable: true,
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(redisCache)
			}

			mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(tt.enable), redisCache)

			request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			request.RemoteAddr = "10.0.0.1:51234"
			request.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

			recorder := httptest.NewRecorder()
			mw.RateLimit()(okHandler).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemain, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestTracing(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cache.NewRedisCache(nil, mocks.NewOtel()))

	recorder := httptest.NewRecorder()
	mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantCode   int
	}{
		{name: "no key configured", wantCode: http.StatusOK},
		{name: "matching key", configured: "secret", header: "secret", wantCode: http.StatusOK},
		{name: "missing key", configured: "secret", wantCode: http.StatusUnauthorized},
		{name: "wrong key", configured: "secret", header: "guess", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			if tt.header != "" {
				request.Header.Set(constant.RequestHeaderAPIKey, tt.header)
			}

			recorder := httptest.NewRecorder()
			middleware.NewAuthMiddleware(mocks.NewOtel(), cfg).APIKey(okHandler).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
