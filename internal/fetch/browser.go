package fetch

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// MinContentLength is the text length below which a page is treated as
	// rendered client-side.
	MinContentLength = 500
	// BrowserTimeout bounds one headless render.
	BrowserTimeout = 30 * time.Second
	// settleDelay gives client-side boards time to fill in the description.
	settleDelay = 2 * time.Second
)

// NeedsBrowser reports whether static extraction came back too thin.
func NeedsBrowser(text string) bool {
	return len(strings.TrimSpace(text)) < MinContentLength
}

var headlessFlags = append(chromedp.DefaultExecAllocatorOptions[:],
	chromedp.Flag("headless", true),
	chromedp.Flag("disable-gpu", true),
	chromedp.Flag("no-sandbox", true),
	chromedp.Flag("disable-dev-shm-usage", true),
)

// Render loads raw in headless Chrome and returns the document HTML after
// scripts ran. Chrome or Chromium must be installed.
func Render(ctx context.Context, raw string) (string, error) {
	return RenderTimeout(ctx, raw, BrowserTimeout)
}

// RenderTimeout is Render with an explicit deadline.
func RenderTimeout(ctx context.Context, raw string, timeout time.Duration) (string, error) {
	if err := CheckURL(raw); err != nil {
		return "", err
	}

	alloc, cancelAlloc := chromedp.NewExecAllocator(ctx, headlessFlags...)
	defer cancelAlloc()
	tab, cancelTab := chromedp.NewContext(alloc)
	defer cancelTab()
	tab, cancel := context.WithTimeout(tab, timeout)
	defer cancel()

	start := time.Now()
	var html string
	if err := chromedp.Run(tab,
		chromedp.Navigate(raw),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &html),
	); err != nil {
		return "", &Error{URL: raw, Op: "headless render", Err: err}
	}

	log.Printf("[fetch] headless render of %s: %d bytes in %s", raw, len(html), time.Since(start).Round(time.Millisecond))
	return html, nil
}
