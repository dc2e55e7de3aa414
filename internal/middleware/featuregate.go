package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FeatureGate hides a route behind a feature flag. When enabled reports false the request
// is answered with 404 as if the route did not exist.
//
// Usage:
//
//	v1.GET("/stocks/:id/performance-id",
//	    middleware.FeatureGate("get_stock_performance_id", func() bool { return cfg.Features.GetStockPerformanceID }),
//	    handler.GetStockPerformanceID)
func FeatureGate(name string, enabled func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if enabled == nil || !enabled() {
			AbortWithError(c, http.StatusNotFound, "feature "+name+" is disabled", nil)
			return
		}
		c.Next()
	}
}
