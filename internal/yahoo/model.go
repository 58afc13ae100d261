package yahoo

// QuoteResponse represents the raw JSON response structure from the Yahoo
// Finance quote API. The structure contains:
//   - QuoteResponse.Result: one quote object per requested symbol
//   - QuoteResponse.Error: optional error message from the Yahoo API
type QuoteResponse struct {
	QuoteResponse struct {
		Result []Quote `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

// Quote is a single symbol's market snapshot as returned by Yahoo Finance.
// Optional fields are pointers: a nil field means the key was absent from
// the API response (unknown symbol, no analyst coverage, market closed).
//
// CurrentPrice is preferred for the live price; RegularMarketPrice is the
// documented fallback when currentPrice is missing or zero.
type Quote struct {
	Symbol             string   `json:"symbol"`
	CurrentPrice       *float64 `json:"currentPrice,omitempty"`
	RegularMarketPrice *float64 `json:"regularMarketPrice,omitempty"`
	TargetMeanPrice    *float64 `json:"targetMeanPrice,omitempty"`
}

// Price returns the quote's live price, preferring currentPrice and falling
// back to regularMarketPrice. A zero price counts as absent, matching the
// provider's habit of zero-filling unknown fields.
func (q Quote) Price() *float64 {
	if q.CurrentPrice != nil && *q.CurrentPrice != 0 {
		return q.CurrentPrice
	}
	if q.RegularMarketPrice != nil && *q.RegularMarketPrice != 0 {
		return q.RegularMarketPrice
	}
	return nil
}
