package middleware

import (
	"strconv"

	"go-user-directory/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records a counter sample per handled request.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
