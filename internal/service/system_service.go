package service

import (
	"database/sql"

	"github.com/mhazelzet/stock-tracker-backend/internal/database"
	"github.com/mhazelzet/stock-tracker-backend/internal/model"
	"github.com/mhazelzet/stock-tracker-backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db           *sql.DB
	storeBackend string
}

// NewSystemService creates a new SystemService. storeBackend names the
// active holdings store ("sheets" or "sqlite") for the version endpoint.
func NewSystemService(db *sql.DB, storeBackend string) *SystemService {
	return &SystemService{
		db:           db,
		storeBackend: storeBackend,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// Version returns application version and runtime information.
func (s *SystemService) Version() model.VersionInfo {
	return model.VersionInfo{
		AppVersion:   version.Version,
		StoreBackend: s.storeBackend,
	}
}
