// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/bethejack/internal/generation"
	"github.com/jonathan/bethejack/internal/ingestion"
	"github.com/jonathan/bethejack/internal/layout"
	"github.com/jonathan/bethejack/internal/rendering"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobDescription outputs where a job description came from and how it begins.
func (p *Printer) PrintJobDescription(jd *ingestion.JobDescription) {
	if jd == nil {
		return
	}

	var sb strings.Builder
	source := jd.Source
	if source == "" {
		source = "(inline)"
	}
	sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	if jd.Platform != "" {
		sb.WriteString(fmt.Sprintf("Platform: %s\n", jd.Platform))
	}
	sb.WriteString(fmt.Sprintf("Length:   %d chars\n", utf8.RuneCountInString(jd.Text)))
	if len(jd.Hash) >= 12 {
		sb.WriteString(fmt.Sprintf("Hash:     %s\n", jd.Hash[:12]))
	}

	lines := layout.Lines(jd.Text)
	if len(lines) > 0 {
		sb.WriteString("\n")
		count := min(len(lines), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %s\n", lines[i]))
		}
		if len(lines) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more lines\n", len(lines)-maxItemsToShow))
		}
	}

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGeneration outputs the model, timing and size of a generated draft.
func (p *Printer) PrintGeneration(res generation.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Model:    %s\n", res.Model))
	sb.WriteString(fmt.Sprintf("Duration: %s\n", res.Duration.Round(time.Millisecond)))
	if res.Err != nil {
		sb.WriteString(fmt.Sprintf("⚠ %v", res.Err))
	} else {
		sb.WriteString(fmt.Sprintf("Draft:    %d lines", len(layout.Lines(res.Text))))
	}

	p.printBox("GENERATED DRAFT", sb.String())
}

// PrintDocument outputs how a draft was split into regions.
func (p *Printer) PrintDocument(doc layout.Document) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Structure: %s\n", doc.Structure))
	if doc.Structure != layout.StructureFlow {
		sb.WriteString(fmt.Sprintf("Sidebar:   %d lines\n", len(layout.Lines(doc.Sidebar))))
	}
	sb.WriteString(fmt.Sprintf("Main:      %d lines", len(layout.Lines(doc.Main))))
	if doc.Structure == layout.StructureUnrecognized {
		sb.WriteString("\n\n⚠ no markers or experience heading found")
	}

	p.printBox("DOCUMENT", sb.String())
}

// PrintTrace outputs the class and position of every placed line.
func (p *Printer) PrintTrace(lines []rendering.TracedLine) {
	if len(lines) == 0 {
		return
	}

	var sb strings.Builder
	counts := make(map[layout.LineClass]int)
	for _, l := range lines {
		counts[l.Class]++
		sb.WriteString(fmt.Sprintf("p%d %5.1f %-7s %-13s %s\n", l.Page+1, l.Y, l.Region, l.Class, l.Text))
	}

	sb.WriteString("\n")
	for c := layout.BlankLine; c <= layout.PlainText; c++ {
		if counts[c] > 0 {
			sb.WriteString(fmt.Sprintf("%-13s %d\n", c, counts[c]))
		}
	}

	p.printBox("LINE CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRender outputs the result of writing a PDF.
func (p *Printer) PrintRender(path string, pages, size int) {
	p.printBox("RENDERED PDF", fmt.Sprintf("File:  %s\nPages: %d\nSize:  %d bytes", path, pages, size))
}
