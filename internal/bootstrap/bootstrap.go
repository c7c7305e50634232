package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/portfolio-api/internal/configuration"
	"github.com/khedhrije/portfolio-api/internal/storage/postgres"
	"github.com/khedhrije/portfolio-api/internal/ui/rest/handlers"
	"github.com/khedhrije/portfolio-api/internal/ui/rest/router"
	"github.com/khedhrije/portfolio-api/pkg/monitoring"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

type Bootstrap struct {
	Config *configuration.AppConfig
	Router *gin.Engine
	DB     postgres.Querier
}

// InitBootstrap opens the pool and wires repository, handlers and router.
func InitBootstrap(ctx context.Context, cfg *configuration.AppConfig) (Bootstrap, error) {
	if cfg == nil {
		return Bootstrap{}, errors.New("configuration is nil")
	}

	pool, err := postgres.NewPool(ctx, *cfg.DatabaseConfig)
	if err != nil {
		return Bootstrap{}, err
	}

	return newBootstrap(cfg, pool), nil
}

// newBootstrap wires everything on top of an already opened db.
func newBootstrap(cfg *configuration.AppConfig, db postgres.Querier) Bootstrap {
	repository := postgres.NewRepository(db)

	r := router.CreateRouter(
		monitoring.New(cfg, db),
		handlers.NewPortfolio(repository),
		router.Options{AllowedOrigins: cfg.CorsConfig.AllowedOrigins},
	)

	return Bootstrap{
		Config: cfg,
		Router: r,
		DB:     db,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests and
// closes the pool.
func (b Bootstrap) Run(ctx context.Context) error {
	defer b.DB.Close()

	srv := &http.Server{
		Addr:         b.Config.RestConfig.Addr(),
		Handler:      b.Router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("version", b.Config.AppVersion).
			Str("revision", b.Config.AppRevision).
			Msgf("server listening, try http://localhost:%d/api/skills", b.Config.RestConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exiting")
	return nil
}
