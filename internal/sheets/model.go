package sheets

// ValueRange mirrors the Google Sheets values API payload for reads and
// writes. Cell values arrive as strings or numbers depending on how the
// sheet was edited, so cells are kept as `any` and coerced by the store.
type ValueRange struct {
	Range          string  `json:"range,omitempty"`
	MajorDimension string  `json:"majorDimension,omitempty"`
	Values         [][]any `json:"values,omitempty"`
}

// apiError mirrors the error envelope returned by the Sheets API.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
