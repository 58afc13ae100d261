package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/mhazelzet/stock-tracker-backend/internal/api/handlers"
	custommiddleware "github.com/mhazelzet/stock-tracker-backend/internal/api/middleware"
	"github.com/mhazelzet/stock-tracker-backend/internal/config"
	"github.com/mhazelzet/stock-tracker-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	holdingsService *service.HoldingsService,
	valuationService *service.ValuationService,
	chartService *service.ChartService,
	settingsService *service.SettingsService,
	cfg *config.Config,
	log zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/holdings", func(r chi.Router) {
			holdingsHandler := handlers.NewHoldingsHandler(holdingsService, valuationService)
			r.Get("/", holdingsHandler.Holdings)
			r.Put("/", holdingsHandler.ReplaceHoldings)
			r.Post("/save", holdingsHandler.SaveHoldings)
			r.Post("/reload", holdingsHandler.ReloadHoldings)
			r.Post("/refresh", holdingsHandler.RefreshHoldings)
		})

		r.Route("/charts", func(r chi.Router) {
			chartsHandler := handlers.NewChartsHandler(chartService)
			r.Get("/prices", chartsHandler.PriceComparison)
			r.Get("/allocation", chartsHandler.Allocation)
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(settingsService)
			r.Get("/sheets", settingsHandler.SheetsSettings)
			r.Put("/sheets", settingsHandler.UpdateSheetsSettings)
		})
	})

	return r
}
