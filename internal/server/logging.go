package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Babismam/gym-frontend/internal/logger"
)

// RequestLoggingMiddleware logs every request after the handler ran, at
// error level when we answered with a 5xx.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.RequestURI(),
			"route", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if status >= http.StatusInternalServerError {
			logger.Error("HTTP request failed", fields...)
			return
		}
		logger.Info("HTTP request", fields...)
	}
}
