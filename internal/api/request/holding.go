package request

import "github.com/mhazelzet/stock-tracker-backend/internal/model"

// HoldingRow represents one edited row of the holdings grid.
type HoldingRow struct {
	Ticker      string   `json:"ticker"`
	Shares      float64  `json:"shares"`
	BuyPrice    float64  `json:"buyPrice"`
	TargetPrice *float64 `json:"targetPrice,omitempty"`
}

// ReplaceHoldingsRequest represents the request body for replacing the
// working draft with the edited table.
type ReplaceHoldingsRequest struct {
	Holdings []HoldingRow `json:"holdings"`
}

// ToModel converts the request rows into domain holdings.
func (r ReplaceHoldingsRequest) ToModel() []model.Holding {
	holdings := make([]model.Holding, len(r.Holdings))
	for i, row := range r.Holdings {
		holdings[i] = model.Holding{
			Ticker:      row.Ticker,
			Shares:      row.Shares,
			BuyPrice:    row.BuyPrice,
			TargetPrice: row.TargetPrice,
		}
	}
	return holdings
}
