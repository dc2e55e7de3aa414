package app

import (
	"database/sql"

	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/morningstar"
	"github.com/guttosm/stockpulse/internal/service"
	"github.com/guttosm/stockpulse/internal/storage"
)

// providerFactory builds the upstream client; overridden in tests to avoid real HTTP calls.
var providerFactory = func(cfg config.MorningstarConfig) service.Provider {
	return morningstar.NewClient(cfg)
}

// NewStockService wires the Morningstar client and, when db is not nil, the Postgres
// stock directory into a service.StockService. The extract CLI passes a nil db.
func NewStockService(cfg config.Config, db *sql.DB) service.StockService {
	var repo storage.StocksRepository
	if db != nil {
		repo = storage.NewStocksRepository(db)
	}
	return service.NewStockService(providerFactory(cfg.Morningstar), repo)
}
