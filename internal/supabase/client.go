// Package supabase implements the remote record store over the Supabase
// PostgREST API. The wire schema is snake_case; normalization to the
// canonical camelCase model happens here, at the storage boundary, so core
// logic only ever sees one spelling per field.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a thin PostgREST client scoped to one project and one access token.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config carries the connection settings for a Supabase project.
type Config struct {
	// URL is the project URL, e.g. https://xyz.supabase.co.
	URL string
	// APIKey is the anon or service key used for both apikey and bearer auth.
	APIKey string
}

// NewClient creates a remote store client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if base == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("supabase API key is required")
	}

	return &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Close satisfies service.Store; HTTP clients hold no resources to release.
func (c *Client) Close() error {
	return nil
}

// restURL builds /rest/v1/<table> with the given query filters.
func (c *Client) restURL(table string, query url.Values) string {
	u := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends a PostgREST request. When out is non-nil the response body is
// decoded into it; callers that want the inserted rows back set the
// return=representation preference.
func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if out != nil && method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("supabase returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// eq builds the PostgREST equality filter value for a column.
func eq(v string) string {
	return "eq." + v
}

// listQuery is the common list filter: owner-scoped, creation order.
func listQuery(owner string) url.Values {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("user_id", eq(owner))
	q.Set("order", "created_at")
	return q
}
