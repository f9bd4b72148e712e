package main

import (
	"wbrent/config"
	"wbrent/di"
	"wbrent/helper"
	"wbrent/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title						WB-Rent API
// @version					1.0
// @description				Equipment rental booking, pricing and back-office API.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
