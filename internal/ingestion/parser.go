package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// expectedHeaders enforces the watchlist column layout. If the header doesn't match
// exactly (order + count, case-insensitive), the import fails.
var expectedHeaders = []string{"Exchange", "Ticker"}

// parseWatchlist opens, validates, and parses one watchlist file into listings.
//
// It fails on:
//   - header not matching expected order/length
//   - a row with the wrong column count or an empty cell
//   - unrecoverable I/O errors
//
// It tolerates:
//   - blank lines and lines starting with '#'
//   - surrounding whitespace and lower-case symbols (normalized to upper case)
//   - duplicate listings (kept once, first occurrence wins)
func parseWatchlist(ctx context.Context, path string) ([]models.Stock, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readWatchlist(ctx, f)
}

func readWatchlist(ctx context.Context, src io.Reader) ([]models.Stock, error) {
	r := csv.NewReader(src)
	r.Comma = ';'
	r.Comment = '#'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // allow variable but we check explicitly

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("read header: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(h), expectedHeaders[i]) {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	var out []models.Stock
	seen := make(map[string]struct{})
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := r.FieldPos(0)

		if len(rec) != len(expectedHeaders) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", line, len(expectedHeaders), len(rec))
		}
		s, err := recordToStock(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, dup := seen[s.Symbol()]; dup {
			continue
		}
		seen[s.Symbol()] = struct{}{}
		out = append(out, s)
	}

	return out, nil
}

// recordToStock converts one validated row into a listing.
//
// Column order:
//
//	0 Exchange → Exchange (MIC, e.g. "XNAS")
//	1 Ticker   → Ticker (e.g. "AAPL", "BRK.B")
func recordToStock(rec []string) (models.Stock, error) {
	var s models.Stock
	s.Exchange = strings.ToUpper(strings.TrimSpace(rec[0]))
	s.Ticker = strings.ToUpper(strings.TrimSpace(rec[1]))
	if s.Exchange == "" {
		return s, errors.New("empty Exchange")
	}
	if s.Ticker == "" {
		return s, errors.New("empty Ticker")
	}
	if strings.ContainsAny(s.Exchange+s.Ticker, ": ") {
		return s, fmt.Errorf("invalid listing %q", s.Symbol())
	}
	return s, nil
}
