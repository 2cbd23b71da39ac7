package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Client wraps http.Client with a timeout and request correlation IDs.
type Client struct {
	client  *http.Client
	baseURL string
}

// newClient creates a probe client against baseURL.
func newClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// GetJSON performs a GET against path and decodes the JSON response into v.
// Every request carries a fresh X-Request-ID so failures can be correlated
// with server logs.
func (c *Client) GetJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s body: %w", path, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode %s body: %w", path, err)
	}
	return nil
}

// Head performs a GET and only reports the status code. Used for the
// health check where the body is Prometheus text, not JSON.
func (c *Client) Head(ctx context.Context, path string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// query builds an escaped selection query string.
func query(country string, year int) string {
	v := url.Values{}
	if country != "" {
		v.Set("country", country)
	}
	if year != 0 {
		v.Set("year", fmt.Sprintf("%d", year))
	}
	if encoded := v.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}
