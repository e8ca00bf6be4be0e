package middlewares

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"smart-search-agent/internal/infrastructure/metrics"
	"smart-search-agent/utils/platformerrors"
)

// RequestID propagates X-Request-Id into the request context so typed
// errors raised while serving it carry the ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader("X-Request-Id"); id != "" {
			c.Writer.Header().Set("X-Request-Id", id)
			c.Request = c.Request.WithContext(platformerrors.WithRequestID(c.Request.Context(), id))
		}
		c.Next()
	}
}

// RequestLogger logs HTTP requests
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Msg("incoming request")

		c.Next()

		for _, e := range c.Errors {
			var platformErr *platformerrors.PlatformError
			if errors.As(e.Err, &platformErr) {
				platformerrors.LogError(logger.With().Str("path", c.Request.URL.Path).Logger(), platformErr)
				continue
			}
			logger.Error().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Err(e.Err).
				Msg("request error")
		}

		logEvent := logger.Info()
		if c.Writer.Status() >= 400 {
			logEvent = logger.Warn()
		}
		logEvent.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request completed")
	}
}

// CORS adds CORS headers
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept, X-Request-Id, Mcp-Session-Id, mcp-protocol-version")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-Id")
		c.Writer.Header().Set("Access-Control-Max-Age", "3600")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// MetricsRecorder records HTTP request metrics for Prometheus
func MetricsRecorder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if path == "/healthz" || path == "/readyz" || path == "/metrics" {
			return
		}

		metrics.RecordRequest(c.Request.Method, strconv.Itoa(c.Writer.Status()))
	}
}
