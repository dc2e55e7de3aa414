package models

// TrailingTotalReturnData holds the trailing total returns of one series (the stock, its
// category or its index), in percent.
type TrailingTotalReturnData struct {
	Name                     *string  `json:"name"`
	Trailing1DayReturn       *float64 `json:"trailing1DayReturn"`
	Trailing1WeekReturn      *float64 `json:"trailing1WeekReturn"`
	Trailing1MonthReturn     *float64 `json:"trailing1MonthReturn"`
	Trailing3MonthReturn     *float64 `json:"trailing3MonthReturn"`
	Trailing6MonthReturn     *float64 `json:"trailing6MonthReturn"`
	TrailingYearToDateReturn *float64 `json:"trailingYearToDateReturn"`
	Trailing1YearReturn      *float64 `json:"trailing1YearReturn"`
	Trailing3YearReturn      *float64 `json:"trailing3YearReturn"`
	Trailing5YearReturn      *float64 `json:"trailing5YearReturn"`
	Trailing10YearReturn     *float64 `json:"trailing10YearReturn"`
	Trailing15YearReturn     *float64 `json:"trailing15YearReturn"`
}

// Field implements pathresolve.Record.
func (d TrailingTotalReturnData) Field(name string) (any, bool) {
	switch name {
	case "name":
		return d.Name, true
	case "trailing1DayReturn":
		return d.Trailing1DayReturn, true
	case "trailing1WeekReturn":
		return d.Trailing1WeekReturn, true
	case "trailing1MonthReturn":
		return d.Trailing1MonthReturn, true
	case "trailing3MonthReturn":
		return d.Trailing3MonthReturn, true
	case "trailing6MonthReturn":
		return d.Trailing6MonthReturn, true
	case "trailingYearToDateReturn":
		return d.TrailingYearToDateReturn, true
	case "trailing1YearReturn":
		return d.Trailing1YearReturn, true
	case "trailing3YearReturn":
		return d.Trailing3YearReturn, true
	case "trailing5YearReturn":
		return d.Trailing5YearReturn, true
	case "trailing10YearReturn":
		return d.Trailing10YearReturn, true
	case "trailing15YearReturn":
		return d.Trailing15YearReturn, true
	}
	return nil, false
}

// TrailingTotalReturnsListData is the trailing returns report.
type TrailingTotalReturnsListData struct {
	TrailingTotalReturnsList []TrailingTotalReturnData `json:"trailingTotalReturnsList"`
}

// Field implements pathresolve.Record.
func (d TrailingTotalReturnsListData) Field(name string) (any, bool) {
	if name == "trailingTotalReturnsList" {
		return d.TrailingTotalReturnsList, true
	}
	return nil, false
}
