package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/khedhrije/portfolio-api/internal/bootstrap"
	"github.com/khedhrije/portfolio-api/internal/configuration"
	"github.com/khedhrije/portfolio-api/internal/logger"
	"github.com/rs/zerolog/log"
)

// Build metadata, overridable with -ldflags.
var (
	version  = ""
	revision = ""
	builtAt  = ""
)

func main() {
	cfg, err := configuration.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load configuration")
	}
	logger.Configure(*cfg.LogConfig)

	if version != "" {
		cfg.AppVersion, cfg.AppRevision, cfg.AppBuiltAt = version, revision, builtAt
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.InitBootstrap(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start application")
	}

	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}
