package dto

// PerformanceIDResponse is returned by GET /api/v1/stocks/{symbol}/performance-id.
type PerformanceIDResponse struct {
	Exchange      string `json:"exchange" example:"XNAS"`
	Ticker        string `json:"ticker" example:"AAPL"`
	PerformanceID string `json:"performanceId" example:"0P000000GY"`
}

// ExtractResponse maps each requested dotted path to its value. Paths that did not
// resolve are present with a null value.
type ExtractResponse map[string]any
