package middleware

import (
	"strconv"
	"time"

	"portfolio/util/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records per-request duration labeled by method, route and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.RecordHTTPRequest(c.Request.Method, path, status, time.Since(start))
	}
}
