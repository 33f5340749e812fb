package rendering

import (
	"strings"

	"github.com/jonathan/bethejack/internal/layout"
	"github.com/jung-kurt/gofpdf"
)

// Measurer reports the rendered width of text in a font, in millimetres.
type Measurer interface {
	Width(text string, f Font) float64
}

// pdfMeasurer uses the core font metrics of a scratch gofpdf document, so widths
// match what the backend draws.
type pdfMeasurer struct {
	pdf *gofpdf.Fpdf
}

// NewMeasurer returns a Measurer backed by gofpdf core font metrics.
func NewMeasurer() Measurer {
	return &pdfMeasurer{pdf: gofpdf.New("P", "mm", "A4", "")}
}

func (m *pdfMeasurer) Width(text string, f Font) float64 {
	m.pdf.SetFont(f.Family, f.Style, f.Size)
	return m.pdf.GetStringWidth(layout.ToLatin1(text))
}

// wrap breaks text into rows no wider than width. The first row may have a
// different width (text continuing after an inline label). Words wider than a
// row are split by rune.
func wrap(m Measurer, text string, f Font, firstWidth, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var rows []string
	limit := firstWidth - 2*cellMargin
	current := ""
	flush := func() {
		rows = append(rows, current)
		current = ""
		limit = width - 2*cellMargin
	}

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.Width(candidate, f) <= limit {
			current = candidate
			continue
		}
		if current != "" {
			flush()
		}
		for m.Width(word, f) > limit {
			head, tail := splitToWidth(m, word, f, limit)
			current = head
			flush()
			word = tail
		}
		current = word
	}
	if current != "" {
		rows = append(rows, current)
	}
	return rows
}

// splitToWidth cuts word at the last rune that still fits, always keeping at
// least one rune in the head so the loop makes progress.
func splitToWidth(m Measurer, word string, f Font, limit float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && m.Width(string(runes[:n+1]), f) <= limit {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
