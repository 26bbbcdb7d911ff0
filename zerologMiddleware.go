package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ZeroLogMiddleware logs gin requests via zerolog; probe requests are skipped
func ZeroLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		path := c.Request.URL.Path
		if isProbe(path) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		// request headers carry the webhook signature, so they're left out
		var event *zerolog.Event
		switch {
		case statusCode >= 500:
			event = log.Warn()
		case statusCode == 401:
			event = log.Info()
		default:
			event = log.Debug()
		}

		event.
			Int("statusCode", statusCode).
			Dur("latencyMs", latency).
			Str("clientIP", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", path).
			Msgf("[GIN] %3d %13v %15s %-7s %s", statusCode, latency, c.ClientIP(), c.Request.Method, path)
	}
}

func isProbe(path string) bool {
	return path == "/liveness" || path == "/readiness"
}
