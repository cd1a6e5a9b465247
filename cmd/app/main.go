package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

// @title Hotel API
// @version 1.0
// @description Rooms, customers and bookings.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	logger.SetOutput(cfg, os.Stdout)

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	defer cleanup()

	http.Serve()
}
