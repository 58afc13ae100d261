package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mhazelzet/stock-tracker-backend/internal/model"
)

// Column headers of the holdings sheet. The save path writes them verbatim;
// the load path matches them to locate columns regardless of sheet order.
const (
	ColumnTicker      = "Ticker"
	ColumnShares      = "Shares"
	ColumnBuyPrice    = "Buy Price ($)"
	ColumnTargetPrice = "Your Target Price ($)"
)

// Store persists holdings in a single spreadsheet range. Reads are bulk
// (all rows); writes are destructive overwrites (clear, then header plus
// all data rows). There is no merge and no concurrency control: two
// sessions saving concurrently are last-writer-wins.
type Store struct {
	client        *Client
	spreadsheetID string
	sheetRange    string
}

// NewStore creates a holdings store over the given spreadsheet range.
func NewStore(client *Client, spreadsheetID, sheetRange string) *Store {
	return &Store{
		client:        client,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
	}
}

// Load reads every holding row from the sheet. The first row is the header.
// Unparseable numeric cells coerce to zero and are reported as warnings
// rather than failing the row; an empty target cell means "no target".
func (s *Store) Load(ctx context.Context) ([]model.Holding, []model.FieldWarning, error) {
	vr, err := s.client.GetValues(ctx, s.spreadsheetID, s.sheetRange)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	if len(vr.Values) < 2 {
		// Empty sheet, or header only.
		return []model.Holding{}, nil, nil
	}

	columns := make(map[string]int, len(vr.Values[0]))
	for i, cell := range vr.Values[0] {
		columns[strings.TrimSpace(cellString(cell))] = i
	}
	if _, ok := columns[ColumnTicker]; !ok {
		return nil, nil, fmt.Errorf("sheet is missing the %q column", ColumnTicker)
	}

	holdings := make([]model.Holding, 0, len(vr.Values)-1)
	var warnings []model.FieldWarning

	for rowIdx, row := range vr.Values[1:] {
		h := model.Holding{
			Ticker: strings.ToUpper(strings.TrimSpace(cellAt(row, columns, ColumnTicker))),
		}

		h.Shares, warnings = parseNumericCell(row, columns, ColumnShares, rowIdx, warnings)
		h.BuyPrice, warnings = parseNumericCell(row, columns, ColumnBuyPrice, rowIdx, warnings)

		if raw := cellAt(row, columns, ColumnTargetPrice); strings.TrimSpace(raw) != "" {
			target, err := parseNumber(raw)
			if err != nil {
				warnings = append(warnings, model.FieldWarning{
					Row:   rowIdx,
					Field: ColumnTargetPrice,
					Value: raw,
				})
			} else if target != 0 {
				h.TargetPrice = &target
			}
		}

		holdings = append(holdings, h)
	}

	return holdings, warnings, nil
}

// Save clears the range and rewrites it: header row first, then one row per
// holding in slice order.
func (s *Store) Save(ctx context.Context, holdings []model.Holding) error {
	if err := s.client.ClearValues(ctx, s.spreadsheetID, s.sheetRange); err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	values := make([][]any, 0, len(holdings)+1)
	values = append(values, []any{ColumnTicker, ColumnShares, ColumnBuyPrice, ColumnTargetPrice})
	for _, h := range holdings {
		var target any = ""
		if h.TargetPrice != nil {
			target = *h.TargetPrice
		}
		values = append(values, []any{h.Ticker, h.Shares, h.BuyPrice, target})
	}

	if err := s.client.UpdateValues(ctx, s.spreadsheetID, s.sheetRange, values); err != nil {
		return fmt.Errorf("failed to write sheet: %w", err)
	}
	return nil
}

// parseNumericCell coerces one numeric cell, appending a warning when the
// cell holds something unparseable. Empty cells are a plain zero.
func parseNumericCell(row []any, columns map[string]int, column string, rowIdx int, warnings []model.FieldWarning) (float64, []model.FieldWarning) {
	raw := cellAt(row, columns, column)
	if strings.TrimSpace(raw) == "" {
		return 0, warnings
	}
	v, err := parseNumber(raw)
	if err != nil {
		return 0, append(warnings, model.FieldWarning{Row: rowIdx, Field: column, Value: raw})
	}
	return v, warnings
}

// cellAt returns the named column's cell of a row as a string, or "" when
// the row is shorter than the header.
func cellAt(row []any, columns map[string]int, column string) string {
	idx, ok := columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return cellString(row[idx])
}

// cellString renders a single cell value. The API returns strings for
// formatted reads and float64 for JSON numbers.
func cellString(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func parseNumber(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	return strconv.ParseFloat(cleaned, 64)
}
