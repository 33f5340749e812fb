// Package fetch downloads job postings and reduces their HTML to plain text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultTimeout bounds a single download.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the tool to job boards.
	DefaultUserAgent = "Mozilla/5.0 (compatible; bethejack/1.0)"
	// DefaultMaxBytes caps how much of a page is read.
	DefaultMaxBytes = 5 << 20
)

// Page is a downloaded document.
type Page struct {
	URL         string
	HTML        string
	ContentType string
	Status      int
}

// Error wraps a failure at one stage of a download.
type Error struct {
	URL string
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Op)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// StatusError is returned for any response other than 200 OK.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: HTTP status %d", e.URL, e.Code)
}

// Client downloads pages. The zero value is not usable; call NewClient.
type Client struct {
	http      *http.Client
	userAgent string
	maxBytes  int64
	headers   http.Header
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying client, including its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithMaxBytes overrides DefaultMaxBytes.
func WithMaxBytes(n int64) Option {
	return func(c *Client) { c.maxBytes = n }
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Add(key, value) }
}

// NewClient returns a Client with defaults overridden by opts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		maxBytes:  DefaultMaxBytes,
		headers:   http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckURL rejects anything but an absolute http or https URL.
func CheckURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &Error{URL: raw, Op: "invalid URL", Err: err}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &Error{URL: raw, Op: "invalid URL"}
	}
	return nil
}

// Get downloads raw. A non-200 response yields both the page and a
// *StatusError so callers can log what the board sent back.
func (c *Client) Get(ctx context.Context, raw string) (*Page, error) {
	if err := CheckURL(raw); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, &Error{URL: raw, Op: "build request", Err: err}
	}
	for k, vs := range c.headers {
		req.Header[k] = vs
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{URL: raw, Op: "request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, &Error{URL: raw, Op: "read body", Err: err}
	}

	page := &Page{
		URL:         raw,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		Status:      resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return page, &StatusError{URL: raw, Code: resp.StatusCode}
	}
	return page, nil
}
