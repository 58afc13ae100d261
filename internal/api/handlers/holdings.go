package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mhazelzet/stock-tracker-backend/internal/api/request"
	"github.com/mhazelzet/stock-tracker-backend/internal/api/response"
	"github.com/mhazelzet/stock-tracker-backend/internal/model"
	"github.com/mhazelzet/stock-tracker-backend/internal/service"
	"github.com/mhazelzet/stock-tracker-backend/internal/validation"
)

// HoldingsHandler handles holdings-related HTTP requests: the working
// draft, persistence, and the refresh action.
type HoldingsHandler struct {
	holdingsService  *service.HoldingsService
	valuationService *service.ValuationService
}

// NewHoldingsHandler creates a new HoldingsHandler
func NewHoldingsHandler(holdingsService *service.HoldingsService, valuationService *service.ValuationService) *HoldingsHandler {
	return &HoldingsHandler{
		holdingsService:  holdingsService,
		valuationService: valuationService,
	}
}

// HoldingsResponse represents the holdings draft response
type HoldingsResponse struct {
	Holdings    []model.Holding      `json:"holdings"`
	Warnings    []model.FieldWarning `json:"warnings,omitempty"`
	LoadWarning string               `json:"loadWarning,omitempty"`
}

func draftResponse(state service.DraftState) HoldingsResponse {
	return HoldingsResponse{
		Holdings:    state.Holdings,
		Warnings:    state.Warnings,
		LoadWarning: state.LoadWarning,
	}
}

// Holdings returns the current working draft, loading it from the store on
// first use.
//
// Endpoint: GET /api/holdings
func (h *HoldingsHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	state := h.holdingsService.Draft(r.Context())
	response.RespondJSON(w, http.StatusOK, draftResponse(state))
}

// ReplaceHoldings replaces the working draft with the edited table. The
// draft stays in memory until an explicit save.
//
// Endpoint: PUT /api/holdings
func (h *HoldingsHandler) ReplaceHoldings(w http.ResponseWriter, r *http.Request) {
	var req request.ReplaceHoldingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateReplaceHoldings(req); err != nil {
		var details interface{} = err.Error()
		if vErr, ok := err.(*validation.Error); ok {
			details = vErr.Fields
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	state := h.holdingsService.ReplaceDraft(req.ToModel())
	response.RespondJSON(w, http.StatusOK, draftResponse(state))
}

// SaveHoldings persists the working draft to the store. On failure the
// draft is untouched and the user can retry.
//
// Endpoint: POST /api/holdings/save
func (h *HoldingsHandler) SaveHoldings(w http.ResponseWriter, r *http.Request) {
	if err := h.holdingsService.Save(r.Context()); err != nil {
		response.RespondError(w, http.StatusBadGateway, "failed to save holdings", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// ReloadHoldings discards the draft and re-reads the store. A store read
// failure degrades to an empty table with a warning, like the initial load.
//
// Endpoint: POST /api/holdings/reload
func (h *HoldingsHandler) ReloadHoldings(w http.ResponseWriter, r *http.Request) {
	state := h.holdingsService.Reload(r.Context())
	response.RespondJSON(w, http.StatusOK, draftResponse(state))
}

// RefreshHoldings fetches live market data for every draft row and returns
// the augmented table, the portfolio summary, and any per-ticker fetch
// errors. A bad ticker never fails the whole refresh.
//
// Endpoint: POST /api/holdings/refresh
func (h *HoldingsHandler) RefreshHoldings(w http.ResponseWriter, r *http.Request) {
	state := h.holdingsService.Draft(r.Context())
	result := h.valuationService.Refresh(r.Context(), state.Holdings)
	response.RespondJSON(w, http.StatusOK, result)
}
