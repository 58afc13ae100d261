package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhazelzet/stock-tracker-backend/internal/apperrors"
	"github.com/mhazelzet/stock-tracker-backend/internal/repository"
	"github.com/mhazelzet/stock-tracker-backend/internal/testutil"
)

func TestSettingRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	repo := repository.NewSettingRepository(db)

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, apperrors.ErrSettingNotFound)

		updatedAt, err := repo.GetUpdatedAt(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, updatedAt)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "sheet_id", "abc"))

		value, err := repo.Get(ctx, "sheet_id")
		require.NoError(t, err)
		assert.Equal(t, "abc", value)

		updatedAt, err := repo.GetUpdatedAt(ctx, "sheet_id")
		require.NoError(t, err)
		require.NotNil(t, updatedAt)
		assert.WithinDuration(t, time.Now().UTC(), *updatedAt, time.Minute)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "sheet_id", "abc"))
		require.NoError(t, repo.Set(ctx, "sheet_id", "def"))

		value, err := repo.Get(ctx, "sheet_id")
		require.NoError(t, err)
		assert.Equal(t, "def", value)
		testutil.AssertRowCount(t, db, "app_setting", 1)
	})
}
