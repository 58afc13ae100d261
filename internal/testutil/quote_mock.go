package testutil

import (
	"context"
	"sync"

	"github.com/mhazelzet/stock-tracker-backend/internal/yahoo"
)

// MockQuoteClient is a mock implementation of yahoo.Client for testing.
// It returns predefined per-symbol quotes or errors instead of making
// actual API calls, and records every requested symbol.
type MockQuoteClient struct {
	// Quotes maps symbol -> quote to return.
	Quotes map[string]yahoo.Quote
	// Errors maps symbol -> error to return. Takes precedence over Quotes.
	Errors map[string]error

	mu    sync.Mutex
	calls []string
}

// NewMockQuoteClient creates an empty mock quote client.
func NewMockQuoteClient() *MockQuoteClient {
	return &MockQuoteClient{
		Quotes: make(map[string]yahoo.Quote),
		Errors: make(map[string]error),
	}
}

// WithQuote configures the mock to return a quote with the given price and
// analyst target for a symbol. Pass 0 to omit a field.
func (m *MockQuoteClient) WithQuote(symbol string, price, analystTarget float64) *MockQuoteClient {
	q := yahoo.Quote{Symbol: symbol}
	if price != 0 {
		q.CurrentPrice = FloatPtr(price)
	}
	if analystTarget != 0 {
		q.TargetMeanPrice = FloatPtr(analystTarget)
	}
	m.Quotes[symbol] = q
	return m
}

// WithError configures the mock to fail for a symbol.
func (m *MockQuoteClient) WithError(symbol string, err error) *MockQuoteClient {
	m.Errors[symbol] = err
	return m
}

// GetQuote returns the configured quote or error for the symbol.
func (m *MockQuoteClient) GetQuote(_ context.Context, symbol string) (yahoo.Quote, error) {
	m.mu.Lock()
	m.calls = append(m.calls, symbol)
	m.mu.Unlock()

	if err, ok := m.Errors[symbol]; ok {
		return yahoo.Quote{}, err
	}
	return m.Quotes[symbol], nil
}

// Calls returns the symbols requested so far.
func (m *MockQuoteClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
