package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhazelzet/stock-tracker-backend/internal/apperrors"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client is the interface consumed by services that need market data.
// FinanceClient implements it against the live Yahoo Finance API; tests
// substitute a mock.
type Client interface {
	GetQuote(ctx context.Context, symbol string) (Quote, error)
}

// FinanceClient provides methods for fetching financial data from the Yahoo
// Finance API. It wraps an HTTP client and provides convenient methods for
// querying live prices and analyst targets.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
}

// NewFinanceClient creates a new Yahoo Finance client with default HTTP
// settings. Every request is attempted exactly once; there are no retries.
func NewFinanceClient(log zerolog.Logger) *FinanceClient {
	return NewFinanceClientWithBase(log, defaultBaseURL)
}

// NewFinanceClientWithBase creates a client against a custom base URL.
// Used by tests to point the client at an httptest server.
func NewFinanceClientWithBase(log zerolog.Logger, baseURL string) *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: baseURL,
		log:     log.With().Str("client", "yahoo").Logger(),
	}
}

// GetQuote fetches the current market snapshot for a single symbol.
// The requested fields are the live price (currentPrice with
// regularMarketPrice as fallback) and the mean analyst price target.
//
// Returns:
//   - Quote: the symbol's snapshot; absent fields are nil
//   - error: if the HTTP request fails, the API returns an error, or the
//     symbol is unknown (apperrors.ErrSymbolNotFound)
func (c *FinanceClient) GetQuote(ctx context.Context, symbol string) (Quote, error) {
	reqURL := fmt.Sprintf(
		"%s/v7/finance/quote?symbols=%s&fields=symbol,currentPrice,regularMarketPrice,targetMeanPrice",
		c.baseURL,
		url.QueryEscape(symbol),
	)

	result, err := c.queryYahoo(ctx, reqURL)
	if err != nil {
		return Quote{}, err
	}
	if len(result.QuoteResponse.Result) == 0 {
		return Quote{}, fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, symbol)
	}

	return result.QuoteResponse.Result[0], nil
}

// queryYahoo is an internal helper that executes HTTP requests to the Yahoo
// Finance API. It handles the common logic for setting headers, reading
// responses, parsing JSON, and checking for API errors.
//
// The User-Agent header mimics a browser to avoid API blocking.
func (c *FinanceClient) queryYahoo(ctx context.Context, reqURL string) (QuoteResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return QuoteResponse{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return QuoteResponse{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return QuoteResponse{}, err
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("yahoo returned non-200 status")
		return QuoteResponse{}, fmt.Errorf("%w: yahoo returned status %d", apperrors.ErrFailedToFetchQuote, resp.StatusCode)
	}

	var response QuoteResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return QuoteResponse{}, err
	}

	if response.QuoteResponse.Error != nil {
		return response, fmt.Errorf("yahoo error: %s", response.QuoteResponse.Error.Description)
	}

	return response, nil
}
