package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
)

// HTTPObserver records served requests
type HTTPObserver interface {
	ObserveHTTP(route, method, status string, duration time.Duration)
}

// Metrics middleware records request count and latency per route
func Metrics(observer HTTPObserver, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTP(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), timeProvider.Since(start))
	}
}
