package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhazelzet/stock-tracker-backend/internal/api"
	"github.com/mhazelzet/stock-tracker-backend/internal/config"
	"github.com/mhazelzet/stock-tracker-backend/internal/database"
	"github.com/mhazelzet/stock-tracker-backend/internal/logger"
	"github.com/mhazelzet/stock-tracker-backend/internal/repository"
	"github.com/mhazelzet/stock-tracker-backend/internal/service"
	"github.com/mhazelzet/stock-tracker-backend/internal/sheets"
	"github.com/mhazelzet/stock-tracker-backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	// Open database connection and bring the schema up to date
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	log.Info().Str("path", cfg.Database.Path).Msg("connected to database")

	// Create repositories and services
	settingRepo := repository.NewSettingRepository(db)

	settingsService, err := service.NewSettingsService(settingRepo, cfg.Secrets.FernetKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create settings service")
	}

	store, backend := buildHoldingsStore(context.Background(), cfg, settingsService, db, log)
	log.Info().Str("backend", backend).Msg("holdings store selected")

	systemService := service.NewSystemService(db, backend)
	holdingsService := service.NewHoldingsService(store, log)
	valuationService := service.NewValuationService(yahoo.NewFinanceClient(log), cfg.Refresh.Workers, log)
	chartService := service.NewChartService(valuationService)

	// Create router
	router := api.NewRouter(systemService, holdingsService, valuationService, chartService, settingsService, cfg, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// buildHoldingsStore picks the holdings store: the Google Sheet when a
// spreadsheet ID and service account key are available (environment first,
// stored settings second), else the local sqlite table. Returns the store
// and the backend name for the version endpoint.
func buildHoldingsStore(ctx context.Context, cfg *config.Config, settingsService *service.SettingsService, db *sql.DB, log zerolog.Logger) (service.HoldingsStore, string) {
	spreadsheetID := cfg.Sheets.SpreadsheetID
	if spreadsheetID == "" {
		if id, err := settingsService.SpreadsheetID(ctx); err == nil {
			spreadsheetID = id
		}
	}

	var credentials []byte
	if cfg.Sheets.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.Sheets.CredentialsFile)
		if err != nil {
			log.Warn().Err(err).Str("file", cfg.Sheets.CredentialsFile).Msg("failed to read service account key file")
		} else {
			credentials = data
		}
	}
	if credentials == nil {
		if data, err := settingsService.Credentials(ctx); err == nil {
			credentials = data
		}
	}

	if spreadsheetID != "" && credentials != nil {
		client, err := sheets.NewClient(ctx, credentials, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to create sheets client, falling back to local store")
		} else {
			return sheets.NewStore(client, spreadsheetID, cfg.Sheets.Range), "sheets"
		}
	}

	return repository.NewHoldingRepository(db), "sqlite"
}
