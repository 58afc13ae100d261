package service

import (
	"math"
	"strings"

	"github.com/mhazelzet/stock-tracker-backend/internal/model"
)

// RoundingPrecision is the multiplier used to round monetary values and
// percentages to two decimal places.
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places. All derived monetary
// and percentage values are rounded at computation time, not at display
// time, so repeated reads of the same refresh are stable.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// NormalizeTicker trims and upper-cases a ticker symbol. An empty result
// means "no market data requested" for that row.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Valuate maps one holding plus an optional market snapshot into a derived
// valuation row. It is a pure function: no side effects, never fails; every
// failure mode degrades to an absent (nil) field.
//
// Zero behaves like absent for cost and value ("falsy zero"): a holding
// with a zero buy price has no total cost rather than a cost of zero, which
// avoids division by zero and nonsensical 100%-loss rows. The trade-off is
// that a genuinely free cost basis (gifted shares) cannot be represented.
func Valuate(h model.Holding, snap *model.Snapshot) model.Valuation {
	v := model.Valuation{
		Ticker:      NormalizeTicker(h.Ticker),
		Shares:      h.Shares,
		BuyPrice:    h.BuyPrice,
		TargetPrice: h.TargetPrice,
	}

	if snap != nil {
		if snap.CurrentPrice != nil && *snap.CurrentPrice != 0 {
			price := round(*snap.CurrentPrice)
			v.CurrentPrice = &price
		}
		if snap.AnalystTarget != nil && *snap.AnalystTarget != 0 {
			target := round(*snap.AnalystTarget)
			v.AnalystTarget = &target
		}
	}

	if v.CurrentPrice != nil && *v.CurrentPrice != 0 && h.Shares != 0 {
		value := round(*v.CurrentPrice * h.Shares)
		v.CurrentValue = &value
	}

	if h.BuyPrice != 0 && h.Shares != 0 {
		cost := round(h.BuyPrice * h.Shares)
		v.TotalCost = &cost
	}

	if v.CurrentValue != nil && v.TotalCost != nil {
		profit := round(*v.CurrentValue - *v.TotalCost)
		v.ProfitAbs = &profit
	}

	if v.ProfitAbs != nil && v.TotalCost != nil && *v.TotalCost != 0 {
		pct := round(*v.ProfitAbs / *v.TotalCost * 100)
		v.ProfitPct = &pct
	}

	if v.AnalystTarget != nil && *v.AnalystTarget != 0 && v.CurrentPrice != nil && *v.CurrentPrice > 0 {
		upside := round((*v.AnalystTarget - *v.CurrentPrice) / *v.CurrentPrice * 100)
		v.AnalystUpsidePct = &upside
	}

	return v
}

// Summarize folds the per-row valuations into portfolio totals. Absent
// per-row values are skipped; summing zero present rows yields zeros, not
// an error. The overall profit percentage carries the same zero-cost guard
// as the per-row one.
func Summarize(rows []model.Valuation) model.PortfolioSummary {
	var s model.PortfolioSummary

	for _, v := range rows {
		if v.CurrentValue != nil {
			s.TotalValue += *v.CurrentValue
		}
		if v.TotalCost != nil {
			s.TotalCost += *v.TotalCost
		}
		if v.ProfitAbs != nil {
			s.TotalProfit += *v.ProfitAbs
		}
	}

	s.TotalValue = round(s.TotalValue)
	s.TotalCost = round(s.TotalCost)
	s.TotalProfit = round(s.TotalProfit)
	if s.TotalCost != 0 {
		s.TotalProfitPct = round(s.TotalProfit / s.TotalCost * 100)
	}

	return s
}
