// Package morningstar is the outbound client for the Morningstar report and realtime
// quote endpoints.
package morningstar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

// ErrNotFound is returned when the provider answers 404 for a resource.
var ErrNotFound = errors.New("morningstar: resource not found")

// StatusError reports any other non-2xx answer.
type StatusError struct {
	Code     int
	Endpoint string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("morningstar: %s returned status %d", e.Endpoint, e.Code)
}

// maxErrorBody bounds how much of an error body is drained before closing.
const maxErrorBody = 4 << 10

// Client fetches provider reports. It is safe for concurrent use.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	quotesBaseURL string
	apiKey        string
	userAgent     string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default instrumented HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a Client from the provider configuration.
//
// The default transport is wrapped with otelhttp so every upstream call produces a client
// span under the globally registered tracer provider.
func NewClient(cfg config.MorningstarConfig, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		quotesBaseURL: strings.TrimRight(cfg.QuotesBaseURL, "/"),
		apiKey:        cfg.APIKey,
		userAgent:     cfg.UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Valuation fetches the valuation report of performanceID.
func (c *Client) Valuation(ctx context.Context, performanceID string) (*models.ValuationData, error) {
	return getJSON[models.ValuationData](ctx, c, c.reportURL("valuation/v3", performanceID))
}

// OperatingPerformance fetches the operating performance report of performanceID.
func (c *Client) OperatingPerformance(ctx context.Context, performanceID string) (*models.OperatingPerformanceData, error) {
	return getJSON[models.OperatingPerformanceData](ctx, c, c.reportURL("operatingPerformance/v3", performanceID))
}

// TrailingTotalReturns fetches the trailing total returns of performanceID.
func (c *Client) TrailingTotalReturns(ctx context.Context, performanceID string) (*models.TrailingTotalReturnsListData, error) {
	endpoint := c.baseURL + "/trailingTotalReturns/" + url.PathEscape(performanceID) + "/data"
	return getJSON[models.TrailingTotalReturnsListData](ctx, c, endpoint)
}

// RealtimeQuotes fetches the realtime quote of exchange:ticker. The result is keyed by
// "EXCHANGE:TICKER" exactly as the provider returns it.
func (c *Client) RealtimeQuotes(ctx context.Context, exchange, ticker string) (map[string]models.RealTimeQuoteData, error) {
	q := url.Values{}
	q.Set("securities", exchange+":"+ticker)
	endpoint := c.quotesBaseURL + "/stores/realtime/quotes?" + q.Encode()

	out, err := getJSON[map[string]models.RealTimeQuoteData](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (c *Client) reportURL(report, performanceID string) string {
	return c.baseURL + "/" + report + "/" + url.PathEscape(performanceID)
}

func getJSON[T any](ctx context.Context, c *Client, endpoint string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("ApiKey", c.apiKey)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", redact(endpoint), err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.CopyN(io.Discard, resp.Body, maxErrorBody)
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.CopyN(io.Discard, resp.Body, maxErrorBody)
		return nil, &StatusError{Code: resp.StatusCode, Endpoint: redact(endpoint)}
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", redact(endpoint), err)
	}
	return &out, nil
}

// redact drops the query string so logged endpoints never carry request parameters.
func redact(endpoint string) string {
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}
