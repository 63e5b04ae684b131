// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Package remote implements the JSON HTTP client for the Quarry
// region API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/quarryhq/quarry/lib/profile"
)

// maxResponseBytes bounds how much of a response body is read. Region
// listings are small; anything larger is a server bug.
const maxResponseBytes = 8 << 20

// Config holds configuration for connecting a Session.
type Config struct {
	// BaseURL is the base URL of the region API
	// (e.g., "http://quarry.example.com/api/2.0").
	BaseURL string
	// APIKey authenticates every request. May be empty for endpoints
	// that allow anonymous access.
	APIKey string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Session is a connection to one Quarry region. It holds the API
// URL, the credentials, and the HTTP transport.
type Session struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Connect validates the configuration and returns a Session. No
// network traffic happens here; use Ping to verify reachability and
// credentials.
func Connect(config Config) (*Session, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("remote: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("remote: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// OpenProfile loads the named profile from the default store and
// connects a session with its URL and credentials.
func OpenProfile(name string, logger *slog.Logger) (*Session, error) {
	store, err := profile.OpenDefault()
	if err != nil {
		return nil, err
	}
	loaded, err := store.Load(name)
	if err != nil {
		return nil, err
	}
	return Connect(Config{BaseURL: loaded.URL, APIKey: loaded.APIKey, Logger: logger})
}

// BaseURL returns the region URL the session talks to.
func (s *Session) BaseURL() string { return s.baseURL }

// Close releases idle connections in the transport pool.
func (s *Session) Close() {
	s.httpClient.CloseIdleConnections()
}

// Ping checks that the region is reachable and the credentials are
// accepted.
func (s *Session) Ping(ctx context.Context) error {
	return s.Call(ctx, http.MethodGet, "/version/", nil, nil, nil)
}

// Call performs one API request. Path is relative to the configured
// base URL, query may be nil, body is JSON-encoded when non-nil, and
// a non-nil result is filled from the response body. Non-2xx
// responses come back as *APIError.
func (s *Session) Call(ctx context.Context, method, path string, query url.Values, body any, result any) error {
	requestURL := s.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return fmt.Errorf("remote: creating request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		request.Header.Set("Authorization", "ApiKey "+s.apiKey)
	}

	s.logger.Debug("api request", "method", method, "path", path)

	response, err := s.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("remote: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("remote: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: response.StatusCode}
		if jsonErr := json.Unmarshal(responseBody, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(responseBody))
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(response.StatusCode)
		}
		s.logger.Debug("api error", "method", method, "path", path, "status", response.StatusCode)
		return apiErr
	}

	if result == nil || len(responseBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(responseBody, result); err != nil {
		return fmt.Errorf("remote: parsing %s %s response: %w", method, path, err)
	}
	return nil
}
