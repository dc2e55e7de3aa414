package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/morningstar"
	"github.com/guttosm/stockpulse/internal/pathresolve"
	"github.com/guttosm/stockpulse/internal/storage"
)

// Provider is the upstream data source. *morningstar.Client implements it.
type Provider interface {
	Valuation(ctx context.Context, performanceID string) (*models.ValuationData, error)
	OperatingPerformance(ctx context.Context, performanceID string) (*models.OperatingPerformanceData, error)
	TrailingTotalReturns(ctx context.Context, performanceID string) (*models.TrailingTotalReturnsListData, error)
	RealtimeQuotes(ctx context.Context, exchange, ticker string) (map[string]models.RealTimeQuoteData, error)
}

var _ Provider = (*morningstar.Client)(nil)

// StockService exposes provider reports and field extraction over them.
//
// A report the provider cannot serve is returned as nil without an error; errors are
// reserved for a canceled or expired request context.
type StockService interface {
	GetStockData(ctx context.Context, performanceID string) (*models.StockData, error)
	GetValuationData(ctx context.Context, performanceID string) (*models.ValuationData, error)
	GetOperatingPerformanceData(ctx context.Context, performanceID string) (*models.OperatingPerformanceData, error)
	GetTrailingTotalReturnsData(ctx context.Context, performanceID string) (*models.TrailingTotalReturnsListData, error)
	ExtractStockData(ctx context.Context, performanceID string, fields []string) (map[string]any, error)
	GetStockPerformanceID(ctx context.Context, exchange, ticker string) (string, error)
	ListStocks(ctx context.Context, exchanges ...string) ([]models.Stock, error)
}

type stockService struct {
	provider Provider
	repo     storage.StocksRepository
	log      zerolog.Logger
}

// NewStockService wires a provider and an optional stock directory. With a nil repo,
// performance IDs are always looked up upstream and never persisted.
func NewStockService(provider Provider, repo storage.StocksRepository) StockService {
	return &stockService{
		provider: provider,
		repo:     repo,
		log:      logger.Component("stock_service"),
	}
}

func (s *stockService) GetValuationData(ctx context.Context, performanceID string) (*models.ValuationData, error) {
	v, err := s.provider.Valuation(ctx, performanceID)
	return settle(ctx, s.log, "valuation", performanceID, v, err)
}

func (s *stockService) GetOperatingPerformanceData(ctx context.Context, performanceID string) (*models.OperatingPerformanceData, error) {
	v, err := s.provider.OperatingPerformance(ctx, performanceID)
	return settle(ctx, s.log, "operating_performance", performanceID, v, err)
}

func (s *stockService) GetTrailingTotalReturnsData(ctx context.Context, performanceID string) (*models.TrailingTotalReturnsListData, error) {
	v, err := s.provider.TrailingTotalReturns(ctx, performanceID)
	return settle(ctx, s.log, "trailing_total_returns", performanceID, v, err)
}

// GetStockData fetches the three reports concurrently and merges them. It returns nil
// when none of them is available.
func (s *stockService) GetStockData(ctx context.Context, performanceID string) (*models.StockData, error) {
	var out models.StockData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.OperatingPerformanceData, err = s.GetOperatingPerformanceData(gctx, performanceID)
		return err
	})
	g.Go(func() (err error) {
		out.ValuationData, err = s.GetValuationData(gctx, performanceID)
		return err
	})
	g.Go(func() (err error) {
		out.TrailingTotalReturnsListData, err = s.GetTrailingTotalReturnsData(gctx, performanceID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if out.IsEmpty() {
		return nil, nil
	}
	return &out, nil
}

// ExtractStockData resolves each dotted field path against the merged stock data. The
// result holds every requested field; unresolved ones map to nil. It returns nil when no
// stock data exists for performanceID.
func (s *stockService) ExtractStockData(ctx context.Context, performanceID string, fields []string) (map[string]any, error) {
	data, err := s.GetStockData(ctx, performanceID)
	if err != nil || data == nil {
		return nil, err
	}

	out := pathresolve.Extract(data, fields)
	if e := s.log.Debug(); e.Enabled() {
		resolved := 0
		for _, v := range out {
			if v != nil {
				resolved++
			}
		}
		e.Str("performance_id", performanceID).Int("fields", len(fields)).Int("resolved", resolved).Msg("fields extracted")
	}
	return out, nil
}

// GetStockPerformanceID maps exchange:ticker to the provider's performance ID. The stock
// directory is consulted first; an upstream hit is written back to it. An empty result
// means the listing is unknown.
func (s *stockService) GetStockPerformanceID(ctx context.Context, exchange, ticker string) (string, error) {
	exchange = strings.ToUpper(strings.TrimSpace(exchange))
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if exchange == "" || ticker == "" {
		return "", nil
	}

	if s.repo != nil {
		cached, err := s.repo.GetStock(ctx, exchange, ticker)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("exchange", exchange).Str("ticker", ticker).Msg("stock directory lookup failed")
		case cached != nil:
			return cached.PerformanceID, nil
		}
	}

	stock := models.Stock{Exchange: exchange, Ticker: ticker}
	quotes, err := s.provider.RealtimeQuotes(ctx, exchange, ticker)
	if quotes, err = settle(ctx, s.log, "realtime_quotes", stock.Symbol(), quotes, err); err != nil || quotes == nil {
		return "", err
	}

	quote, ok := quotes[stock.Symbol()]
	if !ok {
		s.log.Info().Str("symbol", stock.Symbol()).Msg("unable to get stock performance id")
		return "", nil
	}
	id, _ := pathresolve.Resolve(quote, "performanceId.value")
	stock.PerformanceID, _ = id.(string)
	if stock.PerformanceID == "" {
		s.log.Info().Str("symbol", stock.Symbol()).Msg("unable to get stock performance id")
		return "", nil
	}
	if name, ok := pathresolve.Resolve(quote, "name.value"); ok {
		stock.CompanyName, _ = name.(string)
	}

	if s.repo != nil {
		if err := s.repo.UpsertStock(ctx, stock); err != nil {
			s.log.Error().Err(err).Str("symbol", stock.Symbol()).Msg("stock directory write failed")
		}
	}
	return stock.PerformanceID, nil
}

// ListStocks returns the known directory entries.
func (s *stockService) ListStocks(ctx context.Context, exchanges ...string) ([]models.Stock, error) {
	if s.repo == nil {
		return nil, nil
	}
	normalized := make([]string, 0, len(exchanges))
	for _, e := range exchanges {
		if e = strings.ToUpper(strings.TrimSpace(e)); e != "" {
			normalized = append(normalized, e)
		}
	}
	return s.repo.ListStocks(ctx, normalized...)
}

// settle turns a provider failure into an absent result. Only context errors survive.
func settle[T any](ctx context.Context, log zerolog.Logger, report, id string, v T, err error) (T, error) {
	var zero T
	if err == nil {
		return v, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return zero, ctxErr
	}
	logFailure(log, report, id, err)
	return zero, nil
}

func logFailure(log zerolog.Logger, report, id string, err error) {
	if errors.Is(err, morningstar.ErrNotFound) {
		log.Info().Str("report", report).Str("id", id).Msg("report not available upstream")
		return
	}
	log.Error().Err(err).Str("report", report).Str("id", id).Msg("upstream request failed")
}
