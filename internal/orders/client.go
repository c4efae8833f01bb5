// Package orders provides the caller-side plumbing around the report core:
// fetching the order list from the admin API, the inclusive date-range filter
// and the descending date sort the dashboard applies before building a report.
package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/kingcart/console/internal/model"
)

// Client fetches orders from the admin API.
type Client struct {
	baseURL string
	cookie  string // raw Cookie header carrying the admin session; may be empty
	http    *http.Client
}

// NewClient creates a Client for the given API base URL. cookie, when
// non-empty, is sent verbatim as the Cookie header (the admin API uses
// cookie-based sessions).
func NewClient(baseURL, cookie string) *Client {
	return &Client{
		baseURL: baseURL,
		cookie:  cookie,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchTotalOrders retrieves every order visible to the super admin.
func (c *Client) FetchTotalOrders(ctx context.Context) ([]model.OrderRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get-total-orders", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch orders: unexpected status %d", resp.StatusCode)
	}

	var recs []model.OrderRecord
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return recs, nil
}

// ReadFile loads an exported order list from a JSON file.
func ReadFile(path string) ([]model.OrderRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read orders file: %w", err)
	}
	var recs []model.OrderRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("decode orders file %s: %w", path, err)
	}
	return recs, nil
}
