package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/authgate-server/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, route, duration and status of each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	status := c.Writer.Status()
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}

	l.logger.Info("HTTP request completed",
		"method", c.Request.Method,
		"path", route,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", status)

	if status >= http.StatusInternalServerError {
		l.logger.Error("HTTP request failed",
			"method", c.Request.Method,
			"path", route,
			"status", status,
			"errors", c.Errors.String())
	}
}
