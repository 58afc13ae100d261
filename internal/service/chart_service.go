package service

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mhazelzet/stock-tracker-backend/internal/apperrors"
	"github.com/mhazelzet/stock-tracker-backend/internal/model"
)

// Chart colors per series.
var (
	colorCurrent = drawing.ColorFromHex("2563eb") // blue-600
	colorTarget  = drawing.ColorFromHex("9ca3af") // gray-400
	colorAnalyst = drawing.ColorFromHex("16a34a") // green-600
)

// ChartService renders the dashboard charts as PNGs from the most recent
// refresh result. Charts are never persisted; they are redrawn from scratch
// on every request.
type ChartService struct {
	valuations *ValuationService
}

// NewChartService creates a new ChartService reading from the given
// ValuationService's last refresh.
func NewChartService(valuations *ValuationService) *ChartService {
	return &ChartService{valuations: valuations}
}

// PriceComparisonPNG renders the grouped bar chart comparing current price,
// the user's own target, and the analyst target per ticker. Rows carrying
// none of the three prices are skipped. Returns apperrors.ErrNoRefreshData
// before the first refresh and apperrors.ErrNoChartData when no row has a
// price to draw.
func (s *ChartService) PriceComparisonPNG() ([]byte, error) {
	result, ok := s.valuations.LastRefresh()
	if !ok {
		return nil, apperrors.ErrNoRefreshData
	}

	var bars []chart.Value
	for _, row := range result.Rows {
		if row.CurrentPrice == nil && row.TargetPrice == nil && row.AnalystTarget == nil {
			continue
		}
		bars = append(bars, priceBars(row)...)
	}
	if len(bars) == 0 {
		return nil, apperrors.ErrNoChartData
	}

	graph := chart.BarChart{
		Title:    "Price Comparison",
		Width:    80 * len(bars),
		Height:   400,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.Style{},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRenderChart, err)
	}
	return buf.Bytes(), nil
}

// AllocationPNG renders the portfolio allocation pie chart: each ticker's
// share of the total current value. Only rows with a known current value
// participate.
func (s *ChartService) AllocationPNG() ([]byte, error) {
	result, ok := s.valuations.LastRefresh()
	if !ok {
		return nil, apperrors.ErrNoRefreshData
	}

	var total float64
	for _, row := range result.Rows {
		if row.CurrentValue != nil {
			total += *row.CurrentValue
		}
	}

	var slices []chart.Value
	for _, row := range result.Rows {
		if row.CurrentValue == nil || *row.CurrentValue <= 0 {
			continue
		}
		slices = append(slices, chart.Value{
			Value: *row.CurrentValue,
			Label: fmt.Sprintf("%s %.1f%%", row.Ticker, *row.CurrentValue/total*100),
		})
	}
	if len(slices) == 0 {
		return nil, apperrors.ErrNoChartData
	}

	graph := chart.PieChart{
		Title:  "Portfolio Allocation",
		Width:  600,
		Height: 600,
		Values: slices,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRenderChart, err)
	}
	return buf.Bytes(), nil
}

// priceBars expands one valuation row into its group of bars. The current
// price bar carries the ticker label; missing prices simply drop their bar.
func priceBars(row model.Valuation) []chart.Value {
	var bars []chart.Value

	if row.CurrentPrice != nil {
		bars = append(bars, chart.Value{
			Value: *row.CurrentPrice,
			Label: row.Ticker,
			Style: barStyle(colorCurrent),
		})
	}
	if row.TargetPrice != nil {
		bars = append(bars, chart.Value{
			Value: *row.TargetPrice,
			Style: barStyle(colorTarget),
		})
	}
	if row.AnalystTarget != nil {
		bars = append(bars, chart.Value{
			Value: *row.AnalystTarget,
			Style: barStyle(colorAnalyst),
		})
	}
	// Keep the ticker visible even when there is no current price bar.
	if len(bars) > 0 && bars[0].Label == "" {
		bars[0].Label = row.Ticker
	}
	return bars
}

func barStyle(color drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   color,
		StrokeColor: color,
		StrokeWidth: 0,
	}
}
