package model

import "time"

// SheetsSettings describes the spreadsheet configuration stored through the
// settings API. The service account key is fernet-encrypted at rest and is
// never returned by reads; HasCredentials only signals its presence.
type SheetsSettings struct {
	SpreadsheetID  string     `json:"spreadsheetId"`
	HasCredentials bool       `json:"hasCredentials"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// VersionInfo contains version and runtime information for the application.
type VersionInfo struct {
	AppVersion   string `json:"app_version"`
	StoreBackend string `json:"store_backend"`
}
