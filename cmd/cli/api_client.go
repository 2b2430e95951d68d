// Package cli provides command-line interface commands for nmap-navigator.
// This file implements the HTTP client used by commands that talk to a
// running API server.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/theawkwardchild/nmap-navigator/internal/config"
)

const apiClientTimeout = 30 * time.Second

// APIClient provides HTTP client functionality for CLI commands.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// APIError represents an API error response.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// NewAPIClient creates an API client pointed at the configured server.
func NewAPIClient(cfg *config.Config) *APIClient {
	return &APIClient{
		baseURL:    fmt.Sprintf("http://%s", cfg.Address()),
		httpClient: &http.Client{Timeout: apiClientTimeout},
		userAgent:  fmt.Sprintf("nmap-navigator-cli/%s", version),
	}
}

// Get performs a GET request and decodes the JSON response into dest.
func (c *APIClient) Get(path string, dest interface{}) error {
	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if dest != nil {
		if err := json.Unmarshal(body, dest); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
