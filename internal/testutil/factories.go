package testutil

import (
	"github.com/mhazelzet/stock-tracker-backend/internal/model"
)

// FloatPtr returns a pointer to v. Convenience for optional fields.
func FloatPtr(v float64) *float64 {
	return &v
}

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	h := testutil.NewHolding("AAPL").WithShares(10).WithBuyPrice(150).Build()
type HoldingBuilder struct {
	ticker      string
	shares      float64
	buyPrice    float64
	targetPrice *float64
}

// NewHolding creates a HoldingBuilder for the given ticker.
func NewHolding(ticker string) *HoldingBuilder {
	return &HoldingBuilder{ticker: ticker}
}

// WithShares sets the share count.
func (b *HoldingBuilder) WithShares(shares float64) *HoldingBuilder {
	b.shares = shares
	return b
}

// WithBuyPrice sets the per-share cost basis.
func (b *HoldingBuilder) WithBuyPrice(price float64) *HoldingBuilder {
	b.buyPrice = price
	return b
}

// WithTargetPrice sets the user's target price.
func (b *HoldingBuilder) WithTargetPrice(price float64) *HoldingBuilder {
	b.targetPrice = &price
	return b
}

// Build returns the holding.
func (b *HoldingBuilder) Build() model.Holding {
	return model.Holding{
		Ticker:      b.ticker,
		Shares:      b.shares,
		BuyPrice:    b.buyPrice,
		TargetPrice: b.targetPrice,
	}
}
