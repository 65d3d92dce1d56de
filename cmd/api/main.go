package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/app"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/config"
	httpHandlers "github.com/ANIKETSHETTY47/energy-audit-field/internal/http"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if config.JWTSecret() == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, svcs, err := app.Open(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer db.Close()

	server := httpHandlers.NewApp(svcs, config.JWTSecret())

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Str("monthly_mode", string(config.MonthlyMode())).Msg("api listening")
	log.Fatal().Err(server.Listen(addr)).Msg("server exit")
}
