package models

// CalculationInput is the input contract for a rent calculation. The HTTP
// layer validates shape and types; the core assumes the values are valid.
type CalculationInput struct {
	InitialAmount float64 `json:"initial_amount"`
	StartDate     Date    `json:"start_date"`
	PeriodMonths  int     `json:"period_months"`
}

// AdjustmentEvent is one point of the adjustment schedule. The first event
// carries the initial amount with a zero percent change. A gap event, emitted
// when the index series runs out mid-schedule, carries only Date and Error.
type AdjustmentEvent struct {
	Date          Date     `json:"date"`
	Amount        *float64 `json:"amount,omitempty"`
	PercentChange *float64 `json:"percent_change,omitempty"`
	FxAmount      *float64 `json:"fx_amount,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// IsGap reports whether the event is the terminal missing-data marker rather
// than a real adjustment.
func (e AdjustmentEvent) IsGap() bool { return e.Error != "" }

// TimelineSample is one monthly point of the presentation timeline.
type TimelineSample struct {
	Date         Date     `json:"date"`
	ActualAmount float64  `json:"actual_amount"`
	IdealAmount  float64  `json:"ideal_amount"`
	FxAmount     *float64 `json:"fx_amount,omitempty"`
}

// AnalysisSummary aggregates a calculation into headline figures.
type AnalysisSummary struct {
	TotalLocalChangePercent float64  `json:"total_local_change_percent"`
	TotalFxChangePercent    *float64 `json:"total_fx_change_percent,omitempty"`
	ImpliedInflationPercent float64  `json:"implied_inflation_percent"`
}

// CalculationResult is the outbound contract of a rent calculation.
// Analysis is null when fewer than two timeline points exist.
type CalculationResult struct {
	Events   []AdjustmentEvent `json:"events"`
	Timeline []TimelineSample  `json:"timeline"`
	Analysis *AnalysisSummary  `json:"analysis"`
}

// Float is a convenience for the optional numeric fields above.
func Float(v float64) *float64 { return &v }
