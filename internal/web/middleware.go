package web

import (
	"time"

	"github.com/gin-gonic/gin"

	"folio/internal/logger"
)

// requestLogger writes one structured line per request to the app log
func requestLogger() gin.HandlerFunc {
	log := logger.Component("web")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			log.Error("request", append(attrs, "err", c.Errors.String())...)
			return
		}
		log.Info("request", attrs...)
	}
}
