package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mhazelzet/stock-tracker-backend/internal/model"
)

// HoldingRepository is the local holdings store: a sqlite table with the
// same bulk-read / destructive-overwrite semantics as the spreadsheet
// store. It is used when no spreadsheet is configured.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided
// database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// Load retrieves all holdings in saved order. Columns are typed, so no
// coercion warnings can occur; the warning slice is always nil.
func (r *HoldingRepository) Load(ctx context.Context) ([]model.Holding, []model.FieldWarning, error) {
	query := `
		SELECT ticker, shares, buy_price, target_price
		FROM holding
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		var h model.Holding
		var target sql.NullFloat64

		if err := rows.Scan(&h.Ticker, &h.Shares, &h.BuyPrice, &target); err != nil {
			return nil, nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}
		if target.Valid {
			h.TargetPrice = &target.Float64
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil, nil
}

// Save replaces the entire holding table with the given rows, preserving
// slice order. The delete and inserts run in one transaction so a failed
// save never leaves a half-written table.
func (r *HoldingRepository) Save(ctx context.Context, holdings []model.Holding) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM holding"); err != nil {
		return fmt.Errorf("failed to clear holding table: %w", err)
	}

	insert := `
		INSERT INTO holding (id, position, ticker, shares, buy_price, target_price)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for i, h := range holdings {
		var target any
		if h.TargetPrice != nil {
			target = *h.TargetPrice
		}
		if _, err := tx.ExecContext(ctx, insert, uuid.NewString(), i, h.Ticker, h.Shares, h.BuyPrice, target); err != nil {
			return fmt.Errorf("failed to insert holding %s: %w", h.Ticker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit holdings: %w", err)
	}
	return nil
}
