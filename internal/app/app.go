package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/api"
	"github.com/guttosm/stockpulse/internal/logger"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Builds the stock service (Morningstar client plus stock directory).
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	svc := NewStockService(cfg, db)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, cfg)

	api.NewHealthHandler(db.PingContext).Register(router)

	logger.L().Info().
		Bool("feature_get_stock_performance_id", cfg.Features.GetStockPerformanceID).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("application initialized")

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
