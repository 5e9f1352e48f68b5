package orangic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/orangic/orangic-go/pkg/api"
	"github.com/orangic/orangic-go/pkg/debug"
	"github.com/orangic/orangic-go/pkg/observability"
)

// Client performs HTTP requests against the Orangic API. A Client is
// immutable after construction and safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a new Client. The API key is taken from cfg.APIKey or,
// when empty, from the ORANGIC_API_KEY environment variable. Returns
// an authentication APIError when neither is set; no network activity
// happens before that check.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ORANGIC_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, api.NewAuthenticationError(
			"no API key provided: set the ORANGIC_API_KEY environment variable or pass APIKey in Config")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// BaseURL returns the normalized API host the client talks to.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// setHeaders attaches the fixed header set sent with every request.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
}

// roundTrip sends the request through hc and records request metrics.
// Transport-level failures are returned as-is, not reclassified.
func (c *Client) roundTrip(hc *http.Client, req *http.Request, endpoint string) (*http.Response, error) {
	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		observability.RequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, err
	}

	observability.RequestsTotal.WithLabelValues(endpoint, observability.StatusClass(resp.StatusCode)).Inc()
	observability.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	debug.Log("client", "response received",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)
	return resp, nil
}

// getJSON performs a GET request against path and decodes the JSON
// response body. path may carry a query string; the metrics endpoint
// label uses the path without it.
func (c *Client) getJSON(ctx context.Context, path string) (map[string]any, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	c.setHeaders(httpReq)

	endpoint, _, _ := strings.Cut(path, "?")
	httpResp, err := c.roundTrip(c.httpClient, httpReq, endpoint)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if apiErr := classifyResponse(httpResp); apiErr != nil {
		return nil, apiErr
	}

	var result map[string]any
	if err := json.NewDecoder(httpResp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result, nil
}

// Balance returns the current balance for the configured API key.
func (c *Client) Balance(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, "/v1/balance")
}

// UsageReport returns the usage report for the last daysBack days.
// The server enforces the 1-365 range; no client-side validation.
func (c *Client) UsageReport(ctx context.Context, daysBack int) (map[string]any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/v1/report/usage?days=%d", daysBack))
}

// Close releases client resources.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
