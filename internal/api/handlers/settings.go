package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mhazelzet/stock-tracker-backend/internal/api/request"
	"github.com/mhazelzet/stock-tracker-backend/internal/api/response"
	"github.com/mhazelzet/stock-tracker-backend/internal/apperrors"
	"github.com/mhazelzet/stock-tracker-backend/internal/service"
)

// SettingsHandler handles spreadsheet configuration requests.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SheetsSettings returns the stored spreadsheet configuration. The service
// account key is never returned, only whether one is stored.
//
// Endpoint: GET /api/settings/sheets
func (h *SettingsHandler) SheetsSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.SheetsSettings(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve settings", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, settings)
}

// UpdateSheetsSettings stores the spreadsheet ID and optionally the service
// account key. Changes take effect on the next server start.
//
// Endpoint: PUT /api/settings/sheets
func (h *SettingsHandler) UpdateSheetsSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSheetsSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.SpreadsheetID) == "" {
		response.RespondError(w, http.StatusBadRequest, "spreadsheetId is required", nil)
		return
	}

	err := h.settingsService.UpdateSheetsSettings(r.Context(), strings.TrimSpace(req.SpreadsheetID), req.ServiceAccountKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecretsDisabled) {
			response.RespondError(w, http.StatusConflict, "set FERNET_KEY to store credentials", nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store settings", err.Error())
		return
	}

	settings, err := h.settingsService.SheetsSettings(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve settings", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, settings)
}
