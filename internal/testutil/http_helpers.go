package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewJSONRequest creates an HTTP request with a JSON-encoded body.
// This helper simplifies testing handlers that decode request bodies.
//
// Example:
//
//	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/holdings",
//	    request.ReplaceHoldingsRequest{...})
func NewJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeJSON decodes a response recorder's body into out, failing the test
// on error.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	if err := json.NewDecoder(w.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}
