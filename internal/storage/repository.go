package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guttosm/stockpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// StocksRepository persists the exchange:ticker to performance ID directory.
type StocksRepository interface {
	GetStock(ctx context.Context, exchange, ticker string) (*models.Stock, error)
	UpsertStock(ctx context.Context, stock models.Stock) error
	ListStocks(ctx context.Context, exchanges ...string) ([]models.Stock, error)
}

type stocksRepository struct {
	db *sql.DB
}

func NewStocksRepository(db *sql.DB) StocksRepository {
	return &stocksRepository{db: db}
}

// GetStock returns the directory entry for exchange:ticker, or nil when there is none.
func (r *stocksRepository) GetStock(ctx context.Context, exchange, ticker string) (*models.Stock, error) {
	var (
		s       models.Stock
		company sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT exchange, ticker, performance_id, company_name, updated_at
		FROM stocks
		WHERE exchange = $1 AND ticker = $2
	`, exchange, ticker).Scan(&s.Exchange, &s.Ticker, &s.PerformanceID, &company, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stock %s:%s: %w", exchange, ticker, err)
	}
	s.CompanyName = company.String
	return &s, nil
}

// UpsertStock records (or refreshes) a directory entry.
func (r *stocksRepository) UpsertStock(ctx context.Context, stock models.Stock) error {
	var company interface{}
	if stock.CompanyName != "" {
		company = stock.CompanyName
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stocks (exchange, ticker, performance_id, company_name, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (exchange, ticker)
		DO UPDATE SET performance_id = EXCLUDED.performance_id,
					  company_name = COALESCE(EXCLUDED.company_name, stocks.company_name),
					  updated_at = NOW()
	`, stock.Exchange, stock.Ticker, stock.PerformanceID, company)
	if err != nil {
		return fmt.Errorf("upsert stock %s: %w", stock.Symbol(), err)
	}
	return nil
}

// ListStocks returns directory entries ordered by exchange and ticker, restricted to the
// given exchanges when any are passed.
func (r *stocksRepository) ListStocks(ctx context.Context, exchanges ...string) ([]models.Stock, error) {
	query := `SELECT exchange, ticker, performance_id, company_name, updated_at FROM stocks`
	var args []interface{}
	if len(exchanges) > 0 {
		query += ` WHERE exchange = ANY($1)`
		args = append(args, pq.Array(exchanges))
	}
	query += ` ORDER BY exchange, ticker`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Stock
	for rows.Next() {
		var (
			s       models.Stock
			company sql.NullString
		)
		if err := rows.Scan(&s.Exchange, &s.Ticker, &s.PerformanceID, &company, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		s.CompanyName = company.String
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stocks: %w", err)
	}
	return out, nil
}
