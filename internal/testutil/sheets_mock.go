package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mhazelzet/stock-tracker-backend/internal/sheets"
)

// FakeSheetsServer emulates the three Google Sheets values-API calls the
// store uses (get, clear, update) against an in-memory cell grid. It lets
// tests exercise the real sheets client and store end to end without
// network access or auth.
type FakeSheetsServer struct {
	Server *httptest.Server

	mu     sync.Mutex
	values [][]any

	// FailReads and FailWrites make the corresponding calls return 500,
	// for store failure-path tests.
	FailReads  bool
	FailWrites bool
}

// NewFakeSheetsServer starts the fake server and registers its shutdown
// with the test.
func NewFakeSheetsServer(t *testing.T) *FakeSheetsServer {
	t.Helper()

	f := &FakeSheetsServer{}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Server.Close)
	return f
}

// Client returns a sheets client pointed at the fake server.
func (f *FakeSheetsServer) Client() *sheets.Client {
	return sheets.NewClientWithHTTP(f.Server.Client(), f.Server.URL, zerolog.Nop())
}

// SetValues seeds the cell grid.
func (f *FakeSheetsServer) SetValues(values [][]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = values
}

// Values returns a copy of the current cell grid.
func (f *FakeSheetsServer) Values() [][]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]any(nil), f.values...)
}

func (f *FakeSheetsServer) handle(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/") {
		http.NotFound(w, r)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":clear"):
		if f.FailWrites {
			http.Error(w, `{"error":{"code":500,"message":"clear failed","status":"INTERNAL"}}`, http.StatusInternalServerError)
			return
		}
		f.values = nil
		writeJSON(w, map[string]any{})

	case r.Method == http.MethodPut:
		if f.FailWrites {
			http.Error(w, `{"error":{"code":500,"message":"update failed","status":"INTERNAL"}}`, http.StatusInternalServerError)
			return
		}
		var vr sheets.ValueRange
		if err := json.NewDecoder(r.Body).Decode(&vr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.values = vr.Values
		writeJSON(w, map[string]any{"updatedRows": len(vr.Values)})

	case r.Method == http.MethodGet:
		if f.FailReads {
			http.Error(w, `{"error":{"code":500,"message":"read failed","status":"INTERNAL"}}`, http.StatusInternalServerError)
			return
		}
		writeJSON(w, sheets.ValueRange{
			Range:          "Sheet1",
			MajorDimension: "ROWS",
			Values:         f.values,
		})

	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
