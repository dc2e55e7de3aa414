package models

// RowData is one labelled row of a provider report table.
//
// Datum holds one value per column; provider gaps arrive as JSON null and stay nil.
type RowData struct {
	Label      *string    `json:"label"`
	SalDataID  *string    `json:"salDataId"`
	Datum      []*float64 `json:"datum"`
	SubLevel   *string    `json:"subLevel"`
	Percentage *bool      `json:"percentage"`
}

// Field implements pathresolve.Record.
func (r RowData) Field(name string) (any, bool) {
	switch name {
	case "label":
		return r.Label, true
	case "salDataId":
		return r.SalDataID, true
	case "datum":
		return r.Datum, true
	case "subLevel":
		return r.SubLevel, true
	case "percentage":
		return r.Percentage, true
	}
	return nil, false
}

// TableData is the rows/columns grid of a report view.
type TableData struct {
	Rows             []RowData `json:"rows"`
	ColumnDefs       []string  `json:"columnDefs"`
	ColumnDefsLabels []string  `json:"columnDefs_labels"`
}

// Field implements pathresolve.Record.
func (t TableData) Field(name string) (any, bool) {
	switch name {
	case "rows":
		return t.Rows, true
	case "columnDefs":
		return t.ColumnDefs, true
	case "columnDefs_labels":
		return t.ColumnDefsLabels, true
	}
	return nil, false
}

// ReportData is the common envelope of the valuation and operating performance reports.
//
// Collapsed and Expanded are two views of the same report: the collapsed view carries the
// headline rows, the expanded one every sub-level row.
type ReportData struct {
	ReportType       *string    `json:"reportType"`
	ReportTypeLabel  *string    `json:"reportType_label"`
	ColumnDefs       []string   `json:"columnDefs"`
	ColumnDefsLabels []string   `json:"columnDefs_labels"`
	Collapsed        *TableData `json:"Collapsed"`
	Expanded         *TableData `json:"Expanded"`
}

// Field implements pathresolve.Record.
func (r ReportData) Field(name string) (any, bool) {
	switch name {
	case "reportType":
		return r.ReportType, true
	case "reportType_label":
		return r.ReportTypeLabel, true
	case "columnDefs":
		return r.ColumnDefs, true
	case "columnDefs_labels":
		return r.ColumnDefsLabels, true
	case "Collapsed":
		return r.Collapsed, true
	case "Expanded":
		return r.Expanded, true
	}
	return nil, false
}

// ValuationData is the provider's valuation report (price/earnings, price/book, ...).
type ValuationData struct {
	ReportData
}

// OperatingPerformanceData is the provider's operating performance report (margins,
// returns on capital, ...).
type OperatingPerformanceData struct {
	ReportData
}
