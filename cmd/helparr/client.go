package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client wraps HTTP calls to the helparr daemon.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new daemon API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type SessionResponse struct {
	Active  bool   `json:"active"`
	TMDBID  int64  `json:"tmdb_id,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Season  *int   `json:"season,omitempty"`
	Episode *int   `json:"episode,omitempty"`
}

type PlayRequest struct {
	TMDBID  int64  `json:"tmdb_id"`
	Type    string `json:"type"`
	Season  *int   `json:"season,omitempty"`
	Episode *int   `json:"episode,omitempty"`
}

type PlayResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Available bool   `json:"available"`
	Title     string `json:"title,omitempty"`
	Played    bool   `json:"played"`
}

type RequestHistoryItem struct {
	ID        int64  `json:"id"`
	TMDBID    int64  `json:"tmdb_id"`
	MediaType string `json:"media_type"`
	Season    *int   `json:"season,omitempty"`
	Episode   *int   `json:"episode,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type ReconciliationHistoryItem struct {
	ID             int64  `json:"id"`
	TMDBID         int64  `json:"tmdb_id"`
	MediaType      string `json:"media_type"`
	Season         *int   `json:"season,omitempty"`
	Episode        *int   `json:"episode,omitempty"`
	CapturedFile   string `json:"captured_file,omitempty"`
	MatchedLibrary bool   `json:"matched_library"`
	CreatedAt      string `json:"created_at"`
}

type HistoryResponse struct {
	Requests        []RequestHistoryItem        `json:"requests"`
	Reconciliations []ReconciliationHistoryItem `json:"reconciliations"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Session() (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.get("/api/v1/session", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Play(req PlayRequest) (*PlayResponse, error) {
	var resp PlayResponse
	if err := c.post("/api/v1/play", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) TestPlay() error {
	return c.post("/api/v1/testplay", map[string]any{}, nil)
}

func (c *Client) History(tmdbID *int64, status string, limit int) (*HistoryResponse, error) {
	q := url.Values{}
	if tmdbID != nil {
		q.Set("tmdb_id", strconv.FormatInt(*tmdbID, 10))
	}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/v1/history"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var resp HistoryResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
