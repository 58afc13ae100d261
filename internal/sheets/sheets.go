// Package sheets implements a minimal Google Sheets values-API client and a
// holdings store on top of it. Only the three calls the dashboard needs are
// implemented: read a range, clear a range, and overwrite a range.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
)

const (
	defaultBaseURL   = "https://sheets.googleapis.com"
	spreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"
)

// Client calls the Google Sheets v4 values API. The HTTP client carries the
// service-account OAuth2 token source so every request is authenticated.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
}

// NewClient builds a Sheets client from a service-account JSON key.
func NewClient(ctx context.Context, credentialsJSON []byte, log zerolog.Logger) (*Client, error) {
	cfg, err := google.JWTConfigFromJSON(credentialsJSON, spreadsheetScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}

	httpClient := cfg.Client(ctx)
	httpClient.Timeout = 30 * time.Second

	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		log:        log.With().Str("client", "sheets").Logger(),
	}, nil
}

// NewClientWithHTTP builds a client on a caller-supplied HTTP client and
// base URL. Used by tests to target an httptest server without auth.
func NewClientWithHTTP(httpClient *http.Client, baseURL string, log zerolog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		log:        log.With().Str("client", "sheets").Logger(),
	}
}

// GetValues reads all cell values in the given A1 range.
func (c *Client) GetValues(ctx context.Context, spreadsheetID, a1Range string) (ValueRange, error) {
	reqURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(a1Range))

	var vr ValueRange
	if err := c.do(ctx, http.MethodGet, reqURL, nil, &vr); err != nil {
		return ValueRange{}, err
	}
	return vr, nil
}

// ClearValues removes all cell values in the given A1 range.
func (c *Client) ClearValues(ctx context.Context, spreadsheetID, a1Range string) error {
	reqURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:clear",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(a1Range))

	return c.do(ctx, http.MethodPost, reqURL, &ValueRange{}, nil)
}

// UpdateValues overwrites the given A1 range with the provided rows using
// RAW input (values are stored as sent, no spreadsheet parsing).
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, a1Range string, values [][]any) error {
	reqURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=RAW",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(a1Range))

	body := &ValueRange{
		Range:          a1Range,
		MajorDimension: "ROWS",
		Values:         values,
	}
	return c.do(ctx, http.MethodPut, reqURL, body, nil)
}

// do executes one API call: marshal the optional body, send, check the
// status, decode the optional result. Every call is attempted exactly once.
func (c *Client) do(ctx context.Context, method, reqURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("sheets API error (%d %s): %s",
				apiErr.Error.Code, apiErr.Error.Status, apiErr.Error.Message)
		}
		return fmt.Errorf("sheets API returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode sheets response: %w", err)
		}
	}
	return nil
}
