//go:build integration
// +build integration

package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/morningstar"
	"github.com/guttosm/stockpulse/internal/service"
	"github.com/guttosm/stockpulse/internal/storage"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "stockpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=stockpulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "stockpulse")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/ingestion → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

type quotesOnlyProvider struct{ ids map[string]string }

func (quotesOnlyProvider) Valuation(context.Context, string) (*models.ValuationData, error) {
	return nil, morningstar.ErrNotFound
}

func (quotesOnlyProvider) OperatingPerformance(context.Context, string) (*models.OperatingPerformanceData, error) {
	return nil, morningstar.ErrNotFound
}

func (quotesOnlyProvider) TrailingTotalReturns(context.Context, string) (*models.TrailingTotalReturnsListData, error) {
	return nil, morningstar.ErrNotFound
}

func (p quotesOnlyProvider) RealtimeQuotes(_ context.Context, exchange, ticker string) (map[string]models.RealTimeQuoteData, error) {
	sym := exchange + ":" + ticker
	id, ok := p.ids[sym]
	if !ok {
		return map[string]models.RealTimeQuoteData{}, nil
	}
	return map[string]models.RealTimeQuoteData{sym: {PerformanceID: &models.RealTimeQuoteItem{Value: &id}}}, nil
}

func TestIngestion_EndToEnd_ImportWatchlist(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	path := filepath.Join(t.TempDir(), "watchlist.csv")
	if err := os.WriteFile(path, []byte("Exchange;Ticker\nXNAS;AAPL\nXNAS;MSFT\nXNYS;NOPE\n"), 0o600); err != nil {
		t.Fatalf("write watchlist: %v", err)
	}

	repo := storage.NewStocksRepository(db)
	svc := service.NewStockService(quotesOnlyProvider{ids: map[string]string{
		"XNAS:AAPL": "0P000000GY",
		"XNAS:MSFT": "0P000003MH",
	}}, repo)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sum, err := ImportWatchlist(ctx, path, svc, 2)
	if err != nil {
		t.Fatalf("ImportWatchlist: %v", err)
	}
	if sum.Resolved != 2 || sum.Unknown != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	// Assert directory rows written
	var cnt int
	if err := db.QueryRow("SELECT COUNT(*) FROM stocks WHERE exchange='XNAS'").Scan(&cnt); err != nil {
		t.Fatalf("count stocks: %v", err)
	}
	if cnt != 2 {
		t.Fatalf("expected 2 stocks, got %d", cnt)
	}

	// Re-import is served from the directory
	if _, err := ImportWatchlist(ctx, path, svc, 2); err != nil {
		t.Fatalf("second import: %v", err)
	}
	listed, err := repo.ListStocks(ctx)
	if err != nil || len(listed) != 2 {
		t.Fatalf("unexpected listing: %v (%v)", listed, err)
	}
}
