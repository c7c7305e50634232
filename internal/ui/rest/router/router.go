// internal/ui/rest/router/router.go
package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/khedhrije/portfolio-api/internal/ui/rest/handlers"
	"github.com/khedhrije/portfolio-api/pkg/monitoring"
)

type Options struct {
	TrustedProxies []string
	// AllowedOrigins empty means every origin is allowed.
	AllowedOrigins []string
}

// CreateRouter builds the Gin engine and delegates route registration
// to the technical and functional registrars.
func CreateRouter(checksHandler monitoring.Handler, portfolio handlers.Portfolio, opts ...Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(cors.New(corsConfig(opt.AllowedOrigins)))

	// nil disables trusting X-Forwarded-For entirely
	_ = r.SetTrustedProxies(opt.TrustedProxies)

	// status route, outside /api
	r.GET("/", handlers.Ping())

	// Group all backend routes under /api
	api := r.Group("/api")

	RegisterTechnicalRoutes(api, checksHandler)
	RegisterFunctionalRoutes(api, portfolio)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderCorrelationID},
		ExposeHeaders: []string{HeaderCorrelationID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
