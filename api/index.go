package handler

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	transport "hotel/transport/http"
	"net/http"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	server   *transport.HTTP
	initOnce sync.Once
)

// Handler is the serverless entry point. The dependency graph is built on
// the first request and reused by warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	initOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		logger.SetOutput(cfg, os.Stdout)

		var err error

		server, _, err = di.InitializeService()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize service")
		}
	})

	server.ServeHTTP(w, r)
}
