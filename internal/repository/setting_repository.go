package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mhazelzet/stock-tracker-backend/internal/apperrors"
)

// SettingRepository provides data access for the app_setting key/value
// table. Secret values are stored already encrypted by the service layer.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided
// database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the value stored under key, or apperrors.ErrSettingNotFound.
func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM app_setting WHERE "key" = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: %s", apperrors.ErrSettingNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query app_setting table: %w", err)
	}
	return value, nil
}

// GetUpdatedAt returns the last modification time of a setting, or nil when
// the setting has never been written.
func (r *SettingRepository) GetUpdatedAt(ctx context.Context, key string) (*time.Time, error) {
	query := `SELECT updated_at FROM app_setting WHERE "key" = ?`

	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, key).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query app_setting table: %w", err)
	}
	if !updatedAt.Valid {
		return nil, nil
	}
	return &updatedAt.Time, nil
}

// Set stores value under key, overwriting any previous value.
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_setting (id, "key", value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT("key") DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to upsert app_setting: %w", err)
	}
	return nil
}
