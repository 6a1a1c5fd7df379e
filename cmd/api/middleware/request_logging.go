package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hasini-Stu/tasknew/internal/logger"
)

// RequestLogging logs each request with its status and elapsed time.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		durationMillis := time.Since(start).Milliseconds()

		logger.Log.Infof(
			"api_request method=%s path=%s status=%d duration_ms=%d",
			method,
			path,
			status,
			durationMillis,
		)
	}
}
