package model

// Holding is one user-owned position: a ticker with a share count and a cost
// basis. Holdings are the only persistent data in the system; everything else
// is derived per refresh.
type Holding struct {
	// Ticker is the row's identity, normalized to upper case. The store does
	// not enforce uniqueness.
	Ticker string `json:"ticker"`

	// Shares is the owned quantity. Fractional shares are allowed. Missing or
	// unparseable store cells coerce to 0.
	Shares float64 `json:"shares"`

	// BuyPrice is the per-share cost basis. Missing or unparseable store
	// cells coerce to 0, which the valuation treats as "no cost recorded".
	BuyPrice float64 `json:"buyPrice"`

	// TargetPrice is the user's own aspirational price. Optional,
	// display-only; the valuation never computes with it.
	TargetPrice *float64 `json:"targetPrice,omitempty"`
}

// FieldWarning reports a store cell that could not be parsed and was coerced
// to its zero value. Warnings are surfaced to the caller instead of silently
// dropped so the frontend can flag the affected rows.
type FieldWarning struct {
	// Row is the zero-based data row index (header excluded).
	Row   int    `json:"row"`
	Field string `json:"field"`
	// Value is the raw cell content that failed to parse.
	Value string `json:"value"`
}
