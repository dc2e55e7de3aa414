package models

// RealTimeQuoteItem wraps a single quote attribute as the provider sends it.
type RealTimeQuoteItem struct {
	Value *string `json:"value"`
}

// Field implements pathresolve.Record.
func (i RealTimeQuoteItem) Field(name string) (any, bool) {
	if name == "value" {
		return i.Value, true
	}
	return nil, false
}

// RealTimeQuoteData is the realtime quote of one security. The quotes endpoint returns a
// map of these keyed by "EXCHANGE:TICKER".
type RealTimeQuoteData struct {
	PerformanceID *RealTimeQuoteItem `json:"performanceId"`
	Name          *RealTimeQuoteItem `json:"name"`
	Exchange      *RealTimeQuoteItem `json:"exchange"`
}

// Field implements pathresolve.Record.
func (q RealTimeQuoteData) Field(name string) (any, bool) {
	switch name {
	case "performanceId":
		return q.PerformanceID, true
	case "name":
		return q.Name, true
	case "exchange":
		return q.Exchange, true
	}
	return nil, false
}
