package request

// UpdateSheetsSettingsRequest represents the request body for updating the
// spreadsheet configuration. ServiceAccountKey is write-only: leave it
// empty to keep the stored key.
type UpdateSheetsSettingsRequest struct {
	SpreadsheetID     string `json:"spreadsheetId"`
	ServiceAccountKey string `json:"serviceAccountKey,omitempty"`
}
