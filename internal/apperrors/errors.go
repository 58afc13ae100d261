package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
var (
	// ErrSymbolNotFound indicates that a quote lookup returned no results
	// for the requested ticker.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrSettingNotFound indicates that a requested application setting has
	// not been stored.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrSheetsNotConfigured indicates that no spreadsheet ID or credentials
	// are available, neither from the environment nor from stored settings.
	ErrSheetsNotConfigured = errors.New("google sheets not configured")
)

// Business logic errors represent validation failures or constraint
// violations.
var (
	// ErrEmptyTicker indicates a holding row without a ticker symbol.
	ErrEmptyTicker = errors.New("ticker cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid
	// negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNoRefreshData indicates that a chart was requested before any
	// refresh produced valuation data to draw.
	ErrNoRefreshData = errors.New("no refresh data available")

	// ErrNoChartData indicates that a refresh happened but none of its rows
	// carry the values the requested chart needs.
	ErrNoChartData = errors.New("no rows with chartable data")

	// ErrSecretsDisabled indicates that the fernet key is not configured, so
	// secrets cannot be stored or read through the settings API.
	ErrSecretsDisabled = errors.New("secrets encryption not configured")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	ErrFailedToLoadHoldings  = errors.New("failed to load holdings")
	ErrFailedToSaveHoldings  = errors.New("failed to save holdings")
	ErrFailedToFetchQuote    = errors.New("failed to fetch quote")
	ErrFailedToRenderChart   = errors.New("failed to render chart")
	ErrFailedToStoreSettings = errors.New("failed to store settings")
)
