package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/workout-tracker/internal/models"
	"github.com/claude/workout-tracker/internal/storage"
)

// HTTPClient implements DataSource by calling the workout tracker REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but data
// lives on the remote server.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. The token
// may be empty when the remote server runs with auth disabled.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

// ListExercises pulls the full collection via the unpaginated export surface.
func (c *HTTPClient) ListExercises(ctx context.Context, _ int) ([]models.Exercise, error) {
	params := url.Values{}
	params.Set("format", "json")

	body, err := c.get(ctx, "/api/v1/exercises/export", params)
	if err != nil {
		return nil, err
	}

	var records []models.Exercise
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}
	return records, nil
}

func (c *HTTPClient) GetExercise(ctx context.Context, id int64, _ int) (*models.Exercise, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/v1/exercises/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var e models.Exercise
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercise: %w", err)
	}
	return &e, nil
}

func (c *HTTPClient) GetDataStats(ctx context.Context, _ int) (*storage.DataStats, error) {
	body, err := c.get(ctx, "/api/v1/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats storage.DataStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("httpclient: decode stats: %w", err)
	}
	return &stats, nil
}
