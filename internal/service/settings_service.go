package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
	"github.com/rs/zerolog"

	"github.com/mhazelzet/stock-tracker-backend/internal/apperrors"
	"github.com/mhazelzet/stock-tracker-backend/internal/model"
	"github.com/mhazelzet/stock-tracker-backend/internal/repository"
)

// Setting keys for the spreadsheet configuration.
const (
	settingSheetID          = "sheet_id"
	settingSheetCredentials = "sheet_credentials"
)

// SettingsService manages the stored spreadsheet configuration. The service
// account key is fernet-encrypted before it reaches the database and is
// never returned by reads.
type SettingsService struct {
	repo *repository.SettingRepository
	keys []*fernet.Key // nil when no fernet key is configured
	log  zerolog.Logger
}

// NewSettingsService creates a new SettingsService. fernetKey may be empty,
// in which case credential storage is disabled and only the spreadsheet ID
// can be managed through the API.
func NewSettingsService(repo *repository.SettingRepository, fernetKey string, log zerolog.Logger) (*SettingsService, error) {
	s := &SettingsService{
		repo: repo,
		log:  log.With().Str("service", "settings").Logger(),
	}

	if fernetKey != "" {
		keys, err := fernet.DecodeKeys(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("invalid FERNET_KEY: %w", err)
		}
		s.keys = keys
	}

	return s, nil
}

// SheetsSettings returns the stored spreadsheet configuration with the
// credentials masked to a presence flag.
func (s *SettingsService) SheetsSettings(ctx context.Context) (model.SheetsSettings, error) {
	settings := model.SheetsSettings{}

	id, err := s.repo.Get(ctx, settingSheetID)
	if err != nil && !errors.Is(err, apperrors.ErrSettingNotFound) {
		return model.SheetsSettings{}, err
	}
	settings.SpreadsheetID = id

	if _, err := s.repo.Get(ctx, settingSheetCredentials); err == nil {
		settings.HasCredentials = true
	} else if !errors.Is(err, apperrors.ErrSettingNotFound) {
		return model.SheetsSettings{}, err
	}

	updatedAt, err := s.repo.GetUpdatedAt(ctx, settingSheetID)
	if err != nil {
		return model.SheetsSettings{}, err
	}
	settings.UpdatedAt = updatedAt

	return settings, nil
}

// UpdateSheetsSettings stores the spreadsheet ID and, when provided, the
// service account key (encrypted). An empty serviceAccountKey leaves any
// stored key untouched. Changes take effect on the next server start.
func (s *SettingsService) UpdateSheetsSettings(ctx context.Context, spreadsheetID, serviceAccountKey string) error {
	if err := s.repo.Set(ctx, settingSheetID, spreadsheetID); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreSettings, err)
	}

	if serviceAccountKey == "" {
		return nil
	}

	if s.keys == nil {
		return apperrors.ErrSecretsDisabled
	}

	token, err := fernet.EncryptAndSign([]byte(serviceAccountKey), s.keys[0])
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreSettings, err)
	}
	if err := s.repo.Set(ctx, settingSheetCredentials, string(token)); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreSettings, err)
	}

	s.log.Info().Str("spreadsheet_id", spreadsheetID).Msg("sheets settings updated")
	return nil
}

// Credentials returns the decrypted service account key, or
// apperrors.ErrSheetsNotConfigured when none is stored.
func (s *SettingsService) Credentials(ctx context.Context) ([]byte, error) {
	token, err := s.repo.Get(ctx, settingSheetCredentials)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingNotFound) {
			return nil, apperrors.ErrSheetsNotConfigured
		}
		return nil, err
	}

	if s.keys == nil {
		return nil, apperrors.ErrSecretsDisabled
	}

	// TTL 0 disables expiry: stored credentials do not age out.
	msg := fernet.VerifyAndDecrypt([]byte(token), 0, s.keys)
	if msg == nil {
		return nil, fmt.Errorf("stored credentials failed fernet verification")
	}
	return msg, nil
}

// SpreadsheetID returns the stored spreadsheet ID, or
// apperrors.ErrSheetsNotConfigured when none is stored.
func (s *SettingsService) SpreadsheetID(ctx context.Context) (string, error) {
	id, err := s.repo.Get(ctx, settingSheetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingNotFound) {
			return "", apperrors.ErrSheetsNotConfigured
		}
		return "", err
	}
	if id == "" {
		return "", apperrors.ErrSheetsNotConfigured
	}
	return id, nil
}
