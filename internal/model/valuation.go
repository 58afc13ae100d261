package model

// Snapshot is a point-in-time market data read for a single ticker.
// Snapshots are fetched per refresh and never persisted.
type Snapshot struct {
	// CurrentPrice is the latest traded price. Nil when the provider has no
	// price for the symbol.
	CurrentPrice *float64 `json:"currentPrice,omitempty"`

	// AnalystTarget is the mean analyst price target. Nil when unavailable.
	AnalystTarget *float64 `json:"analystTarget,omitempty"`
}

// Valuation is a holding augmented with derived market metrics. All derived
// fields are optional: a nil pointer means the value could not be computed
// (missing market data, or a zero operand under the falsy-zero policy).
// Valuations exist for the duration of one refresh and are never persisted.
type Valuation struct {
	Ticker      string   `json:"ticker"`
	Shares      float64  `json:"shares"`
	BuyPrice    float64  `json:"buyPrice"`
	TargetPrice *float64 `json:"targetPrice,omitempty"`

	CurrentPrice     *float64 `json:"currentPrice,omitempty"`
	CurrentValue     *float64 `json:"currentValue,omitempty"`
	TotalCost        *float64 `json:"totalCost,omitempty"`
	ProfitAbs        *float64 `json:"profitAbs,omitempty"`
	ProfitPct        *float64 `json:"profitPct,omitempty"`
	AnalystTarget    *float64 `json:"analystTarget,omitempty"`
	AnalystUpsidePct *float64 `json:"analystUpsidePct,omitempty"`
}

// PortfolioSummary aggregates the present per-row values of a refresh.
// Absent per-row values are ignored; an empty portfolio sums to zero.
type PortfolioSummary struct {
	TotalValue     float64 `json:"totalValue"`
	TotalCost      float64 `json:"totalCost"`
	TotalProfit    float64 `json:"totalProfit"`
	TotalProfitPct float64 `json:"totalProfitPct"`
}

// FetchError names a ticker whose market data could not be retrieved during
// a refresh. The affected row keeps its holding fields; derived fields stay
// absent. Other rows are unaffected.
type FetchError struct {
	Ticker string `json:"ticker"`
	Error  string `json:"error"`
}

// RefreshResult is the complete output of one refresh cycle: the augmented
// table in input order, portfolio totals, and the per-ticker fetch errors.
type RefreshResult struct {
	Rows    []Valuation      `json:"rows"`
	Summary PortfolioSummary `json:"summary"`
	Errors  []FetchError     `json:"errors"`
}
