package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{RequestTimeout: 5 * time.Second, RateLimitPerMinute: 100},
	}
}

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockStockService{valuation: &models.ValuationData{ReportData: models.ReportData{ReportType: strPtr("valuation")}}}
	r := NewRouter(NewHandler(svc), testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stocks/0P000000GY/valuation", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if svc.gotID != "0P000000GY" {
		t.Fatalf("handler not reached: %q", svc.gotID)
	}
}

func TestNewRouter_PerformanceIDFeatureGate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		enabled bool
		want    int
	}{
		{name: "disabled", enabled: false, want: http.StatusNotFound},
		{name: "enabled", enabled: true, want: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Features.GetStockPerformanceID = tc.enabled
			svc := &mockStockService{perfID: "0P000000GY"}
			r := NewRouter(NewHandler(svc), cfg)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stocks/XNAS:AAPL/performance-id", nil))
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
			if !tc.enabled && svc.gotTicker != "" {
				t.Fatalf("disabled route must not reach the service")
			}
		})
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.Server.RateLimitPerMinute = 1
	r := NewRouter(NewHandler(&mockStockService{}), cfg)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stocks", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes: %v", codes)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockStockService{}), testConfig())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/aggregate", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
