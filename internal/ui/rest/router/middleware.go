package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const HeaderCorrelationID = "X-Correlation-Id"

// RequestLogger tags each request with a correlation id, stores a child
// logger in the request context and logs one line once the handler returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		corrID := c.GetHeader(HeaderCorrelationID)
		if corrID == "" {
			corrID = uuid.NewString()
		}
		c.Header(HeaderCorrelationID, corrID)

		logger := log.With().Str("correlation_id", corrID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Msg("request completed")
	}
}
