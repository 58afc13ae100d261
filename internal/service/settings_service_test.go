package service_test

import (
	"context"
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhazelzet/stock-tracker-backend/internal/apperrors"
	"github.com/mhazelzet/stock-tracker-backend/internal/repository"
	"github.com/mhazelzet/stock-tracker-backend/internal/service"
	"github.com/mhazelzet/stock-tracker-backend/internal/testutil"
)

func newSettingsService(t *testing.T, fernetKey string) *service.SettingsService {
	t.Helper()

	db := testutil.SetupTestDB(t)
	repo := repository.NewSettingRepository(db)

	svc, err := service.NewSettingsService(repo, fernetKey, zerolog.Nop())
	require.NoError(t, err)
	return svc
}

func testFernetKey(t *testing.T) string {
	t.Helper()

	var key fernet.Key
	require.NoError(t, key.Generate())
	return key.Encode()
}

func TestSettingsServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newSettingsService(t, testFernetKey(t))

	saKey := `{"type":"service_account","client_email":"svc@example.iam.gserviceaccount.com"}`
	require.NoError(t, svc.UpdateSheetsSettings(ctx, "sheet-123", saKey))

	t.Run("reads mask the credentials", func(t *testing.T) {
		settings, err := svc.SheetsSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "sheet-123", settings.SpreadsheetID)
		assert.True(t, settings.HasCredentials)
		assert.NotNil(t, settings.UpdatedAt)
	})

	t.Run("credentials decrypt to the stored key", func(t *testing.T) {
		got, err := svc.Credentials(ctx)
		require.NoError(t, err)
		assert.Equal(t, saKey, string(got))
	})

	t.Run("spreadsheet id is readable directly", func(t *testing.T) {
		id, err := svc.SpreadsheetID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "sheet-123", id)
	})

	t.Run("updating the id alone keeps the stored key", func(t *testing.T) {
		require.NoError(t, svc.UpdateSheetsSettings(ctx, "sheet-456", ""))

		settings, err := svc.SheetsSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "sheet-456", settings.SpreadsheetID)
		assert.True(t, settings.HasCredentials)
	})
}

func TestSettingsServiceUnconfigured(t *testing.T) {
	ctx := context.Background()
	svc := newSettingsService(t, testFernetKey(t))

	settings, err := svc.SheetsSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings.SpreadsheetID)
	assert.False(t, settings.HasCredentials)
	assert.Nil(t, settings.UpdatedAt)

	_, err = svc.SpreadsheetID(ctx)
	assert.ErrorIs(t, err, apperrors.ErrSheetsNotConfigured)

	_, err = svc.Credentials(ctx)
	assert.ErrorIs(t, err, apperrors.ErrSheetsNotConfigured)
}

func TestSettingsServiceWithoutFernetKey(t *testing.T) {
	ctx := context.Background()
	svc := newSettingsService(t, "")

	t.Run("storing a key is rejected", func(t *testing.T) {
		err := svc.UpdateSheetsSettings(ctx, "sheet-123", `{"type":"service_account"}`)
		assert.ErrorIs(t, err, apperrors.ErrSecretsDisabled)
	})

	t.Run("the spreadsheet id still works", func(t *testing.T) {
		require.NoError(t, svc.UpdateSheetsSettings(ctx, "sheet-123", ""))

		id, err := svc.SpreadsheetID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "sheet-123", id)
	})
}

func TestSettingsServiceRejectsBadFernetKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSettingRepository(db)

	_, err := service.NewSettingsService(repo, "not-a-key", zerolog.Nop())
	assert.Error(t, err)
}
