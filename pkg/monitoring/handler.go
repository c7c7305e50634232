package monitoring

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/portfolio-api/internal/configuration"
)

// ====== Public surface ======

type Handler interface {
	// Basic
	Livez() gin.HandlerFunc
	Readyz() gin.HandlerFunc
	Healthz() gin.HandlerFunc
	Version() gin.HandlerFunc
	ServerInfo() gin.HandlerFunc

	// Checks
	Check() gin.HandlerFunc   // database
	Metrics() gin.HandlerFunc // runtime + pool metrics
}

// New constructs a Handler reporting on db with build info from cfg.
func New(cfg *configuration.AppConfig, db Database) Handler {
	return &handler{cfg: cfg, db: db, startTime: time.Now()}
}

// ====== Implementation ======

type handler struct {
	cfg       *configuration.AppConfig
	db        Database
	startTime time.Time
}

// run executes fn with a timeout and writes the shared check envelope.
func (h *handler) run(c *gin.Context, name string, timeout time.Duration, fn func(ctx context.Context) (Detail, error)) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	detail, err := fn(ctx)
	lat := time.Since(start).Milliseconds()

	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "error",
			"name":      name,
			"latencyMs": lat,
			"error":     err.Error(),
			"detail":    detail,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"name":      name,
		"latencyMs": lat,
		"detail":    detail,
	})
}

// --- basic health/info ---

func (h *handler) Livez() gin.HandlerFunc {
	return func(c *gin.Context) { c.Status(http.StatusOK) }
}

// Readyz reports not ready while the database is unreachable.
func (h *handler) Readyz() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 1500*time.Millisecond)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"checks": gin.H{"database": err.Error()},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"checks": gin.H{"database": "ok"},
		})
	}
}

func (h *handler) Healthz() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"version":  h.cfg.AppVersion,
			"revision": h.cfg.AppRevision,
			"builtAt":  h.cfg.AppBuiltAt,
		})
	}
}

func (h *handler) Version() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":  h.cfg.AppVersion,
			"revision": h.cfg.AppRevision,
			"builtAt":  h.cfg.AppBuiltAt,
		})
	}
}

func (h *handler) ServerInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, "server-info", 800*time.Millisecond, func(ctx context.Context) (Detail, error) {
			return ServerInformation(ctx, ServerInfoOptions{
				Name:      h.cfg.AppName,
				Version:   h.cfg.AppVersion,
				Revision:  h.cfg.AppRevision,
				BuiltAt:   h.cfg.AppBuiltAt,
				StartTime: h.startTime,
			})
		})
	}
}

// --- /api/check/database ---

func (h *handler) Check() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, "database", 2500*time.Millisecond, func(ctx context.Context) (Detail, error) {
			return DatabaseCheck(ctx, h.db)
		})
	}
}

// --- /api/check/metrics ---

func (h *handler) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, "metrics", 800*time.Millisecond, func(ctx context.Context) (Detail, error) {
			return Metrics(ctx, h.db)
		})
	}
}
