package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rshade/dexterm/internal/logging"
)

// Default client settings.
const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	DefaultPageLimit = 20
	DefaultUserAgent = "dexterm"

	resourcePath = "pokemon"

	// maxErrorBodyBytes bounds how much of a failed response is kept for the error message.
	maxErrorBodyBytes = 512
)

// ErrFetch is the single failure kind: transport error, non-2xx status, or
// a body that is not the expected JSON.
var ErrFetch = errors.New("catalog fetch failed")

// Client fetches catalog pages and detail records.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
// Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.UserAgent = ua
		}
	}
}

// NewClient returns a client rooted at baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  DefaultUserAgent,
		HTTPClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FirstPageURL returns the page URL for the given limit and offset.
func (c *Client) FirstPageURL(limit, offset int) string {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	return fmt.Sprintf("%s/%s/?%s", c.BaseURL, resourcePath, q.Encode())
}

// DetailURL returns the detail resource URL for an item name or numeric id.
func (c *Client) DetailURL(identifier string) string {
	id := strings.ToLower(strings.TrimSpace(identifier))
	return fmt.Sprintf("%s/%s/%s", c.BaseURL, resourcePath, url.PathEscape(id))
}

// FetchPage fetches and decodes the page at pageURL.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (PageResponse, error) {
	var page PageResponse
	if err := c.getJSON(ctx, pageURL, &page); err != nil {
		return PageResponse{}, err
	}
	return page, nil
}

// FetchDetail fetches and decodes the detail record at detailURL.
func (c *Client) FetchDetail(ctx context.Context, detailURL string) (DetailResponse, error) {
	var detail DetailResponse
	if err := c.getJSON(ctx, detailURL, &detail); err != nil {
		return DetailResponse{}, err
	}
	return detail, nil
}

// Get issues a GET for rawURL and returns the response for the caller to
// consume. Non-2xx statuses are reported as ErrFetch.
func (c *Client) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %w", ErrFetch, rawURL, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrFetch, rawURL, err)
	}

	logging.FromContext(ctx).Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("catalog request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: status %d: %s",
			ErrFetch, rawURL, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	resp, err := c.Get(ctx, rawURL)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s: %w", ErrFetch, rawURL, err)
	}
	return nil
}
