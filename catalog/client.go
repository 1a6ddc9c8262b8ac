package catalog

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

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the collection endpoint used when none is configured
const DefaultBaseURL = "https://653a1600e3b530c8d9e92290.mockapi.io/kinolist/rate"

// Client talks to the rated-movie collection
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// NewClient creates a new collection client
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", ErrInvalidConfig, baseURL)
	}

	client := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "kinolist",
		logger:    logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the collection endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest performs an HTTP request against the collection and returns the
// response body of a 2xx reply
func (c *Client) doRequest(ctx context.Context, method, id string, payload any) ([]byte, error) {
	endpoint := c.baseURL
	path := "/"
	if id != "" {
		path = "/" + url.PathEscape(id)
		endpoint += path
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRemote, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrRemote, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Catalog API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	return respBody, nil
}

// decodeEntry decodes a single wire entry
func decodeEntry(body []byte) (Entry, error) {
	var w wireEntry
	if err := json.Unmarshal(body, &w); err != nil {
		return Entry{}, fmt.Errorf("%w: failed to parse response: %w", ErrRemote, err)
	}
	return w.toEntry(), nil
}

// TestConnection verifies the collection endpoint answers
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodGet, "", nil)
	return err
}

// ListAll retrieves the full collection
func (c *Client) ListAll(ctx context.Context) ([]Entry, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	var wire []wireEntry
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to list entries: %w: failed to parse response: %w", ErrRemote, err)
	}

	entries := make([]Entry, 0, len(wire))
	for _, w := range wire {
		entries = append(entries, w.toEntry())
	}

	c.logger.Debug().Msgf("Retrieved %d entries from catalog", len(entries))
	return entries, nil
}

// GetOne retrieves a single entry
func (c *Client) GetOne(ctx context.Context, id string) (Entry, error) {
	if id == "" {
		return Entry{}, fmt.Errorf("failed to get entry: %w: empty id", ErrNotFound)
	}

	body, err := c.doRequest(ctx, http.MethodGet, id, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get entry %s: %w", id, err)
	}

	entry, err := decodeEntry(body)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get entry %s: %w", id, err)
	}
	return entry, nil
}

// Create submits a new entry without an id
func (c *Client) Create(ctx context.Context, fields Fields) (Entry, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "", toWire(fields))
	if err != nil {
		return Entry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	entry, err := decodeEntry(body)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	c.logger.Info().Str("id", entry.ID).Str("title", entry.Title).Msg("Movie has successfully been added")
	return entry, nil
}

// Update replaces the fields of an existing entry
func (c *Client) Update(ctx context.Context, id string, fields Fields) (Entry, error) {
	if id == "" {
		return Entry{}, fmt.Errorf("failed to update entry: %w: empty id", ErrNotFound)
	}

	body, err := c.doRequest(ctx, http.MethodPut, id, toWire(fields))
	if err != nil {
		return Entry{}, fmt.Errorf("failed to update entry %s: %w", id, err)
	}

	entry, err := decodeEntry(body)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to update entry %s: %w", id, err)
	}

	c.logger.Info().Str("id", id).Str("title", entry.Title).Msg("Movie has successfully been updated")
	return entry, nil
}

// Remove deletes an entry by id
func (c *Client) Remove(ctx context.Context, id string) (Entry, error) {
	if id == "" {
		return Entry{}, fmt.Errorf("failed to delete entry: %w: empty id", ErrNotFound)
	}

	body, err := c.doRequest(ctx, http.MethodDelete, id, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to delete entry %s: %w", id, err)
	}

	entry, err := decodeEntry(body)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to delete entry %s: %w", id, err)
	}

	c.logger.Info().Str("id", id).Msg("Movie has successfully been deleted")
	return entry, nil
}
