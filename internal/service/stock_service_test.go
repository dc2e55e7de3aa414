package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/morningstar"
)

func strPtr(s string) *string { return &s }

type fakeProvider struct {
	mu sync.Mutex

	valuation *models.ValuationData
	operating *models.OperatingPerformanceData
	returns   *models.TrailingTotalReturnsListData
	quotes    map[string]models.RealTimeQuoteData

	valuationErr error
	operatingErr error
	returnsErr   error
	quotesErr    error

	quoteCalls int
}

func (f *fakeProvider) Valuation(context.Context, string) (*models.ValuationData, error) {
	return f.valuation, f.valuationErr
}

func (f *fakeProvider) OperatingPerformance(context.Context, string) (*models.OperatingPerformanceData, error) {
	return f.operating, f.operatingErr
}

func (f *fakeProvider) TrailingTotalReturns(context.Context, string) (*models.TrailingTotalReturnsListData, error) {
	return f.returns, f.returnsErr
}

func (f *fakeProvider) RealtimeQuotes(context.Context, string, string) (map[string]models.RealTimeQuoteData, error) {
	f.mu.Lock()
	f.quoteCalls++
	f.mu.Unlock()
	return f.quotes, f.quotesErr
}

type fakeRepo struct {
	stocks   map[string]models.Stock
	getErr   error
	upserted []models.Stock
	listArgs []string
}

func (r *fakeRepo) GetStock(_ context.Context, exchange, ticker string) (*models.Stock, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if s, ok := r.stocks[exchange+":"+ticker]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *fakeRepo) UpsertStock(_ context.Context, s models.Stock) error {
	r.upserted = append(r.upserted, s)
	return nil
}

func (r *fakeRepo) ListStocks(_ context.Context, exchanges ...string) ([]models.Stock, error) {
	r.listArgs = exchanges
	return []models.Stock{{Exchange: "XNAS", Ticker: "AAPL", PerformanceID: "0P000000GY"}}, nil
}

func valuationFixture() *models.ValuationData {
	return &models.ValuationData{ReportData: models.ReportData{
		ReportType: strPtr("valuation"),
		Collapsed: &models.TableData{Rows: []models.RowData{
			{Label: strPtr("Price/Sales")},
			{Label: strPtr("Price/Earnings")},
		}},
	}}
}

func TestGetStockData(t *testing.T) {
	cases := []struct {
		name     string
		provider *fakeProvider
		wantNil  bool
		check    func(t *testing.T, sd *models.StockData)
	}{
		{
			name: "all reports",
			provider: &fakeProvider{
				valuation: valuationFixture(),
				operating: &models.OperatingPerformanceData{},
				returns:   &models.TrailingTotalReturnsListData{},
			},
			check: func(t *testing.T, sd *models.StockData) {
				assert.NotNil(t, sd.ValuationData)
				assert.NotNil(t, sd.OperatingPerformanceData)
				assert.NotNil(t, sd.TrailingTotalReturnsListData)
			},
		},
		{
			name: "partial failure keeps the rest",
			provider: &fakeProvider{
				valuation:    valuationFixture(),
				operatingErr: &morningstar.StatusError{Code: 500, Endpoint: "op"},
				returnsErr:   morningstar.ErrNotFound,
			},
			check: func(t *testing.T, sd *models.StockData) {
				assert.NotNil(t, sd.ValuationData)
				assert.Nil(t, sd.OperatingPerformanceData)
				assert.Nil(t, sd.TrailingTotalReturnsListData)
			},
		},
		{
			name: "nothing available",
			provider: &fakeProvider{
				valuationErr: morningstar.ErrNotFound,
				operatingErr: morningstar.ErrNotFound,
				returnsErr:   errors.New("boom"),
			},
			wantNil: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewStockService(tc.provider, nil)
			sd, err := svc.GetStockData(context.Background(), "0P000000GY")
			require.NoError(t, err)
			if tc.wantNil {
				assert.Nil(t, sd)
				return
			}
			require.NotNil(t, sd)
			tc.check(t, sd)
		})
	}
}

func TestGetStockData_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewStockService(&fakeProvider{valuationErr: context.Canceled}, nil)
	sd, err := svc.GetStockData(ctx, "X")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, sd)
}

func TestSingleReports(t *testing.T) {
	p := &fakeProvider{
		valuation:  valuationFixture(),
		operating:  &models.OperatingPerformanceData{},
		returnsErr: errors.New("upstream down"),
	}
	svc := NewStockService(p, nil)
	ctx := context.Background()

	v, err := svc.GetValuationData(ctx, "X")
	require.NoError(t, err)
	assert.Equal(t, "valuation", *v.ReportType)

	op, err := svc.GetOperatingPerformanceData(ctx, "X")
	require.NoError(t, err)
	assert.NotNil(t, op)

	tr, err := svc.GetTrailingTotalReturnsData(ctx, "X")
	require.NoError(t, err)
	assert.Nil(t, tr)
}

func TestExtractStockData(t *testing.T) {
	svc := NewStockService(&fakeProvider{valuation: valuationFixture()}, nil)

	out, err := svc.ExtractStockData(context.Background(), "X", []string{
		"valuationData.reportType",
		"valuationData.Collapsed.rows[1].label",
		"nonexistent.path",
		"valuationData.Collapsed.rows[9].label",
		"operatingPerformanceData.reportType",
	})
	require.NoError(t, err)
	require.Len(t, out, 5)

	assert.Equal(t, "valuation", out["valuationData.reportType"])
	assert.Equal(t, "Price/Earnings", out["valuationData.Collapsed.rows[1].label"])
	for _, k := range []string{"nonexistent.path", "valuationData.Collapsed.rows[9].label", "operatingPerformanceData.reportType"} {
		v, present := out[k]
		assert.True(t, present, k)
		assert.Nil(t, v, k)
	}
}

func TestExtractStockData_NoData(t *testing.T) {
	svc := NewStockService(&fakeProvider{
		valuationErr: morningstar.ErrNotFound,
		operatingErr: morningstar.ErrNotFound,
		returnsErr:   morningstar.ErrNotFound,
	}, nil)

	out, err := svc.ExtractStockData(context.Background(), "X", []string{"valuationData.reportType"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestGetStockPerformanceID(t *testing.T) {
	quotes := map[string]models.RealTimeQuoteData{
		"XNAS:AAPL": {
			PerformanceID: &models.RealTimeQuoteItem{Value: strPtr("0P000000GY")},
			Name:          &models.RealTimeQuoteItem{Value: strPtr("Apple Inc")},
		},
		"XNAS:EMPT": {},
	}

	t.Run("directory hit skips upstream", func(t *testing.T) {
		p := &fakeProvider{quotes: quotes}
		repo := &fakeRepo{stocks: map[string]models.Stock{"XNAS:AAPL": {PerformanceID: "CACHED"}}}
		id, err := NewStockService(p, repo).GetStockPerformanceID(context.Background(), " xnas ", "aapl")
		require.NoError(t, err)
		assert.Equal(t, "CACHED", id)
		assert.Equal(t, 0, p.quoteCalls)
	})

	t.Run("upstream hit is persisted", func(t *testing.T) {
		p := &fakeProvider{quotes: quotes}
		repo := &fakeRepo{}
		id, err := NewStockService(p, repo).GetStockPerformanceID(context.Background(), "XNAS", "AAPL")
		require.NoError(t, err)
		assert.Equal(t, "0P000000GY", id)
		require.Len(t, repo.upserted, 1)
		assert.Equal(t, models.Stock{Exchange: "XNAS", Ticker: "AAPL", PerformanceID: "0P000000GY", CompanyName: "Apple Inc"}, repo.upserted[0])
	})

	t.Run("directory error falls back to upstream", func(t *testing.T) {
		p := &fakeProvider{quotes: quotes}
		repo := &fakeRepo{getErr: errors.New("db down")}
		id, err := NewStockService(p, repo).GetStockPerformanceID(context.Background(), "XNAS", "AAPL")
		require.NoError(t, err)
		assert.Equal(t, "0P000000GY", id)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		repo := &fakeRepo{}
		id, err := NewStockService(&fakeProvider{quotes: quotes}, repo).GetStockPerformanceID(context.Background(), "XNYS", "IBM")
		require.NoError(t, err)
		assert.Empty(t, id)
		assert.Empty(t, repo.upserted)
	})

	t.Run("quote without performance id", func(t *testing.T) {
		id, err := NewStockService(&fakeProvider{quotes: quotes}, nil).GetStockPerformanceID(context.Background(), "XNAS", "EMPT")
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("upstream failure", func(t *testing.T) {
		id, err := NewStockService(&fakeProvider{quotesErr: errors.New("boom")}, nil).GetStockPerformanceID(context.Background(), "XNAS", "AAPL")
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("blank input", func(t *testing.T) {
		p := &fakeProvider{quotes: quotes}
		id, err := NewStockService(p, nil).GetStockPerformanceID(context.Background(), " ", "AAPL")
		require.NoError(t, err)
		assert.Empty(t, id)
		assert.Equal(t, 0, p.quoteCalls)
	})
}

func TestListStocks(t *testing.T) {
	out, err := NewStockService(&fakeProvider{}, nil).ListStocks(context.Background(), "XNAS")
	require.NoError(t, err)
	assert.Nil(t, out)

	repo := &fakeRepo{}
	in := []string{" xnas", "", "bvmf "}
	out, err = NewStockService(&fakeProvider{}, repo).ListStocks(context.Background(), in...)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, []string{"XNAS", "BVMF"}, repo.listArgs)
	assert.Equal(t, []string{" xnas", "", "bvmf "}, in)
}
