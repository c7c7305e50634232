package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/khedhrije/portfolio-api/internal/configuration"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure sets the global level and installs the returned logger as log.Logger.
func Configure(cfg configuration.LogConfig) zerolog.Logger {
	return configure(cfg, os.Stdout)
}

func configure(cfg configuration.LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).
		With().
		Timestamp().
		Logger()

	log.Logger = logger
	return logger
}
