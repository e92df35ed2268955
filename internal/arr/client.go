// Package arr provides clients for the Radarr and Sonarr v3 HTTP APIs.
//
// Read operations (existence checks, profile and folder resolution) degrade
// on failure: they log and return a zero value so a flaky service never
// blocks the request path. Create operations propagate errors, because a
// failed add must be visible to the caller.
package arr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const apiBase = "/api/v3"

// fallbackProfileID is used when the quality profile list cannot be fetched.
const fallbackProfileID int64 = 1

// ErrNoRootFolder is returned by create operations when the service has no
// root folder configured.
var ErrNoRootFolder = errors.New("no root folder configured")

// ErrAlreadyAdded is returned when adding a series that the service already
// tracks.
var ErrAlreadyAdded = errors.New("series already added")

// client is the HTTP plumbing shared by the Radarr and Sonarr clients.
type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *client) {
		c.logger = logger
	}
}

func newClient(baseURL, apiKey, component string, opts ...Option) client {
	c := client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.logger = c.logger.With("component", component)
	return c
}

// get performs a GET request against the v3 API and decodes the JSON body
// into result.
func (c *client) get(ctx context.Context, path string, query url.Values, result any) error {
	reqURL := c.baseURL + apiBase + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// post performs a POST request with a JSON body and decodes the response
// into result.
func (c *client) post(ctx context.Context, path string, body, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiBase+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("POST %s: status %d: %s", path, resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// qualityProfileID resolves the quality profile to use for new items:
// the profile named "Any" if present, else the first configured profile,
// else a fixed fallback. Failures are logged, never returned.
func (c *client) qualityProfileID(ctx context.Context) int64 {
	var profiles []QualityProfile
	if err := c.get(ctx, "/qualityprofile", nil, &profiles); err != nil {
		c.logger.Error("fetching quality profiles failed", "error", err)
		return fallbackProfileID
	}
	for _, p := range profiles {
		if p.Name == "Any" {
			return p.ID
		}
	}
	if len(profiles) > 0 {
		return profiles[0].ID
	}
	return fallbackProfileID
}

// rootFolderPath returns the first configured root folder, or "" when the
// call fails or no folder is configured.
func (c *client) rootFolderPath(ctx context.Context) string {
	var folders []RootFolder
	if err := c.get(ctx, "/rootfolder", nil, &folders); err != nil {
		c.logger.Error("fetching root folders failed", "error", err)
		return ""
	}
	if len(folders) == 0 {
		return ""
	}
	return folders[0].Path
}
