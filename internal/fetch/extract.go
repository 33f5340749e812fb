package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors says where a page keeps its posting and what to strip first.
// Content is tried in order; the first match wins.
type Selectors struct {
	Content []string
	Noise   []string
}

// pageChrome is stripped from every page regardless of board.
var pageChrome = []string{
	"nav", "footer", "header", "script", "style", "noscript", "svg", "iframe",
	".ad", ".advertisement", ".cookie-banner", ".popup",
}

// genericContent locates the posting on pages from unknown boards.
var genericContent = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// Generic returns the selectors used when the board is not recognized.
func Generic() Selectors {
	return Selectors{Content: append([]string(nil), genericContent...)}
}

// blockBreaks end a visual line; their text is followed by a newline.
const blockBreaks = "br, p, div, li, h1, h2, h3, h4, tr"

// Extract returns the posting text of doc. List items are prefixed with "- "
// and block elements end a line, so the structure of the posting survives.
// When no content selector matches, the whole body is used.
func Extract(html string, sel Selectors) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	doc.Find(strings.Join(pageChrome, ", ")).Remove()
	if len(sel.Noise) > 0 {
		doc.Find(strings.Join(sel.Noise, ", ")).Remove()
	}

	root := doc.Find("body")
	for _, s := range sel.Content {
		if found := doc.Find(s); found.Length() > 0 {
			root = found.First()
			break
		}
	}

	root.Find("li").PrependHtml("- ")
	root.Find(blockBreaks).AppendHtml("\n")

	return squeeze(root.Text()), nil
}

// squeeze collapses runs of spaces inside lines and drops empty lines.
func squeeze(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if f := strings.Fields(line); len(f) > 0 {
			kept = append(kept, strings.Join(f, " "))
		}
	}
	return strings.Join(kept, "\n")
}
