package handlers

import (
	"errors"
	"net/http"

	"github.com/mhazelzet/stock-tracker-backend/internal/api/response"
	"github.com/mhazelzet/stock-tracker-backend/internal/apperrors"
	"github.com/mhazelzet/stock-tracker-backend/internal/service"
)

// ChartsHandler serves the dashboard charts rendered from the most recent
// refresh.
type ChartsHandler struct {
	chartService *service.ChartService
}

// NewChartsHandler creates a new ChartsHandler
func NewChartsHandler(chartService *service.ChartService) *ChartsHandler {
	return &ChartsHandler{chartService: chartService}
}

// PriceComparison serves the grouped bar chart PNG: current price, user
// target, and analyst target per ticker.
//
// Endpoint: GET /api/charts/prices
func (h *ChartsHandler) PriceComparison(w http.ResponseWriter, r *http.Request) {
	png, err := h.chartService.PriceComparisonPNG()
	if err != nil {
		respondChartError(w, err)
		return
	}
	response.RespondPNG(w, http.StatusOK, png)
}

// Allocation serves the portfolio allocation pie chart PNG.
//
// Endpoint: GET /api/charts/allocation
func (h *ChartsHandler) Allocation(w http.ResponseWriter, r *http.Request) {
	png, err := h.chartService.AllocationPNG()
	if err != nil {
		respondChartError(w, err)
		return
	}
	response.RespondPNG(w, http.StatusOK, png)
}

func respondChartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoRefreshData):
		response.RespondError(w, http.StatusConflict, "refresh prices before requesting charts", nil)
	case errors.Is(err, apperrors.ErrNoChartData):
		response.RespondError(w, http.StatusNotFound, "no rows with chartable data", nil)
	default:
		response.RespondError(w, http.StatusInternalServerError, "failed to render chart", err.Error())
	}
}
