package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger emits a structured log line for every failed request.
// Successful requests are left to gin's access log.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		if status < 400 {
			return
		}

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}
		slog.Log(c.Request.Context(), level, "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration", time.Since(start),
		)
	}
}
