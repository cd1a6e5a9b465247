package http

import (
	"hotel/config"
	"hotel/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthDuringShutdown(t *testing.T) {
	for _, state := range []ServerState{ServerStateInGracePeriod, ServerStateInCleanupPeriod} {
		h := New(&config.Config{}, router.Router{}, nil)
		h.setState(state)

		recorder := httptest.NewRecorder()
		h.health(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	}
}
