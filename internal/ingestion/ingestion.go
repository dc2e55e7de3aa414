// Package ingestion bulk-loads a watchlist of exchange listings into the stock
// directory by resolving each listing's performance ID.
package ingestion

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockpulse/internal/logger"
)

const maxParallel = 8

// Resolver maps a listing to its performance ID; an empty ID means the listing is
// unknown. service.StockService implements it.
type Resolver interface {
	GetStockPerformanceID(ctx context.Context, exchange, ticker string) (string, error)
}

// Summary counts the outcome of one import.
type Summary struct {
	Total    int
	Resolved int
	Unknown  int
}

// ImportWatchlist resolves every listing in the watchlist file at path.
//
// Behavior:
//   - The file is validated and parsed up front; a malformed file imports nothing.
//   - Listings are resolved by at most parallel goroutines: 0 means min(8, NumCPU),
//     anything else is clamped to 1..8.
//   - An unknown listing is counted and logged, it does not stop the import.
//   - A resolver error (only a canceled or expired context) cancels the rest and is
//     returned.
func ImportWatchlist(ctx context.Context, path string, resolver Resolver, parallel int) (Summary, error) {
	stocks, err := parseWatchlist(ctx, path)
	if err != nil {
		return Summary{}, fmt.Errorf("watchlist %s: %w", path, err)
	}

	workers := clampParallel(parallel)
	log := logger.Component("ingestion")
	log.Info().Str("file", filepath.Base(path)).Int("listings", len(stocks)).Int("max_parallel", workers).Msg("import start")

	start := time.Now()
	var resolved, unknown atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, s := range stocks {
		s := s
		g.Go(func() error {
			id, err := resolver.GetStockPerformanceID(gctx, s.Exchange, s.Ticker)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", s.Symbol(), err)
			}
			if id == "" {
				unknown.Add(1)
				log.Warn().Str("symbol", s.Symbol()).Msg("listing unknown upstream")
				return nil
			}
			resolved.Add(1)
			log.Debug().Str("symbol", s.Symbol()).Str("performance_id", id).Msg("listing resolved")
			return nil
		})
	}
	err = g.Wait()

	sum := Summary{Total: len(stocks), Resolved: int(resolved.Load()), Unknown: int(unknown.Load())}
	ev := log.Info()
	if err != nil {
		ev = log.Error().Err(err)
	}
	ev.Int("total", sum.Total).Int("resolved", sum.Resolved).Int("unknown", sum.Unknown).
		Dur("elapsed", time.Since(start)).Msg("import done")
	return sum, err
}

func clampParallel(parallel int) int {
	switch {
	case parallel > maxParallel:
		return maxParallel
	case parallel > 0:
		return parallel
	}
	if c := runtime.NumCPU(); c < maxParallel {
		return c
	}
	return maxParallel
}
