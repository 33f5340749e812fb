// Package ingestion loads job descriptions from files, stdin, or job board URLs.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jonathan/bethejack/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the posting could not be downloaded.
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text could be pulled from the page.
	ErrContentExtractionFailed = errors.New("content extraction failed")
	// ErrEmpty is returned when the source yields no text at all.
	ErrEmpty = errors.New("job description is empty")
)

// Options controls URL ingestion.
type Options struct {
	// UseBrowser enables the headless Chrome fallback for pages whose
	// static HTML carries too little text.
	UseBrowser bool
	Verbose    bool
	// Client downloads pages. Defaults to fetch.NewClient().
	Client *fetch.Client
	// Browser renders a page with JavaScript. Defaults to fetch.Render.
	Browser func(ctx context.Context, url string) (string, error)
	// Stdin is read when the source is "-". Defaults to os.Stdin.
	Stdin io.Reader
}

// IsURL reports whether source looks like an http(s) URL rather than a path.
func IsURL(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Load reads a job description from a URL, a file path, or stdin ("-").
func Load(ctx context.Context, source string, opts Options) (*JobDescription, error) {
	var (
		jd  *JobDescription
		err error
	)
	switch {
	case source == "-":
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		jd, err = FromReader(in)
	case IsURL(source):
		jd, err = FromURL(ctx, source, opts)
	default:
		jd, err = FromFile(source)
	}
	if err != nil {
		return nil, err
	}
	if jd.Text == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, source)
	}
	return jd, nil
}

// FromURL downloads a job posting and extracts its main text using the
// selectors of the detected job board.
func FromURL(ctx context.Context, urlStr string, opts Options) (*JobDescription, error) {
	platform := fetch.DetectPlatform(urlStr)
	if opts.Verbose {
		log.Printf("[ingest] %s (platform %s)", urlStr, platform)
	}

	client := opts.Client
	if client == nil {
		client = fetch.NewClient()
	}
	page, err := client.Get(ctx, urlStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	sel := fetch.SelectorsFor(platform)
	text, err := fetch.Extract(page.HTML, sel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if opts.Verbose {
		log.Printf("[ingest] extracted %d chars from %d bytes of HTML", len(text), len(page.HTML))
	}

	if opts.UseBrowser && fetch.NeedsBrowser(text) {
		text = renderWithBrowser(ctx, urlStr, text, sel, opts)
	}

	return newJobDescription(CleanText(text), urlStr, string(platform)), nil
}

// renderWithBrowser retries extraction on JavaScript-rendered HTML. Any
// failure keeps the text from the static fetch.
func renderWithBrowser(ctx context.Context, urlStr, text string, sel fetch.Selectors, opts Options) string {
	browser := opts.Browser
	if browser == nil {
		browser = fetch.Render
	}
	log.Printf("[ingest] only %d chars of text (< %d), rendering %s in browser", len(text), fetch.MinContentLength, urlStr)

	html, err := browser(ctx, urlStr)
	if err != nil {
		log.Printf("[ingest] browser rendering failed, keeping static content: %v", err)
		return text
	}
	rendered, err := fetch.Extract(html, sel)
	if err != nil || len(rendered) <= len(text) {
		return text
	}
	return rendered
}
