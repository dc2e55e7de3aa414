package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Adds request timeout handling (REQUEST_TIMEOUT).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1/stocks).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - cfg (config.Config): Server limits and feature flags.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, cfg config.Config) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)
	if cfg.Server.RateLimitPerMinute > 0 {
		router.Use(middleware.RateLimiter(cfg.Server.RateLimitPerMinute, time.Minute))
	}
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	perfIDEnabled := cfg.Features.GetStockPerformanceID
	stocks := router.Group("/api/v1/stocks")
	{
		stocks.GET("", handler.ListStocks)
		stocks.GET("/:id", handler.GetStockData)
		stocks.GET("/:id/valuation", handler.GetValuation)
		stocks.GET("/:id/operating-performance", handler.GetOperatingPerformance)
		stocks.GET("/:id/trailing-returns", handler.GetTrailingReturns)
		stocks.POST("/:id/extract", handler.ExtractStockData)
		stocks.GET("/:id/performance-id",
			middleware.FeatureGate("get_stock_performance_id", func() bool { return perfIDEnabled }),
			handler.GetStockPerformanceID)
	}

	return router
}
