package middleware

import (
	"strconv"

	"github.com/SscSPs/fieldops_console/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// RequestMetrics counts requests by route template and status.
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
