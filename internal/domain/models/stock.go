package models

import "time"

// StockData merges every report fetched for one performance ID. A report the provider
// could not serve is nil.
//
// swagger:model StockData
type StockData struct {
	OperatingPerformanceData     *OperatingPerformanceData     `json:"operatingPerformanceData"`
	ValuationData                *ValuationData                `json:"valuationData"`
	TrailingTotalReturnsListData *TrailingTotalReturnsListData `json:"trailingTotalReturnsListData"`
}

// Field implements pathresolve.Record.
func (s StockData) Field(name string) (any, bool) {
	switch name {
	case "operatingPerformanceData":
		return s.OperatingPerformanceData, true
	case "valuationData":
		return s.ValuationData, true
	case "trailingTotalReturnsListData":
		return s.TrailingTotalReturnsListData, true
	}
	return nil, false
}

// IsEmpty reports whether no report is present.
func (s StockData) IsEmpty() bool {
	return s.OperatingPerformanceData == nil && s.ValuationData == nil && s.TrailingTotalReturnsListData == nil
}

// Stock maps an exchange listing to the provider's performance ID.
//
// Fields:
//   - Exchange: Exchange MIC (e.g., "XNAS").
//   - Ticker: Listing symbol on that exchange (e.g., "AAPL").
//   - PerformanceID: Provider security identifier (e.g., "0P000000GY").
//   - CompanyName: Company name reported by the quotes endpoint, if any.
//   - UpdatedAt: Last time the mapping was written.
type Stock struct {
	Exchange      string    `json:"exchange" example:"XNAS"`
	Ticker        string    `json:"ticker" example:"AAPL"`
	PerformanceID string    `json:"performanceId" example:"0P000000GY"`
	CompanyName   string    `json:"companyName,omitempty" example:"Apple Inc"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Symbol returns the "EXCHANGE:TICKER" key used by the quotes endpoint.
func (s Stock) Symbol() string {
	return s.Exchange + ":" + s.Ticker
}
