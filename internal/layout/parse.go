// Package layout splits generated resume text into regions and classifies its lines.
package layout

import (
	"strings"

	"github.com/jonathan/bethejack/internal/types"
)

// Sentinel markers recognized in generated text.
const (
	SidebarMarker     = "[SIDEBAR_START]"
	MainMarker        = "[MAIN_START]"
	ExperienceHeading = "PROFESSIONAL EXPERIENCE"
)

// ParseErrorSentinel replaces the sidebar when no structure could be recognized,
// so the failure shows up on the page instead of being dropped.
const ParseErrorSentinel = "Parse Error"

// Structure records which split rule produced a Document.
type Structure int

const (
	// StructureMarkers means both sentinel markers were found.
	StructureMarkers Structure = iota
	// StructureHeading means the split fell back to the experience heading.
	StructureHeading
	// StructureUnrecognized means neither markers nor heading were found.
	StructureUnrecognized
	// StructureFlow is the single-page layout: no split at all.
	StructureFlow
)

func (s Structure) String() string {
	switch s {
	case StructureMarkers:
		return "markers"
	case StructureHeading:
		return "heading"
	case StructureUnrecognized:
		return "unrecognized"
	case StructureFlow:
		return "flow"
	default:
		return "unknown"
	}
}

// Document holds the two text regions of a resume. Sidebar is empty for the
// single-page layout.
type Document struct {
	Sidebar   string
	Main      string
	Structure Structure
}

// Split divides text into sidebar and main regions for the given layout.
// It never fails: unrecognized input yields the whole text as Main and
// ParseErrorSentinel as Sidebar.
func Split(text string, mode types.LayoutMode) Document {
	if mode == types.LayoutSinglePage {
		return Document{
			Main:      stripMarkers(text),
			Structure: StructureFlow,
		}
	}

	if strings.Contains(text, SidebarMarker) && strings.Contains(text, MainMarker) {
		before, after, _ := strings.Cut(text, MainMarker)
		return Document{
			Sidebar:   strings.TrimSpace(strings.ReplaceAll(before, SidebarMarker, "")),
			Main:      strings.TrimSpace(stripMarkers(after)),
			Structure: StructureMarkers,
		}
	}

	if before, after, found := strings.Cut(text, ExperienceHeading); found {
		// a repeated heading would otherwise open Main twice
		rest := strings.TrimSpace(stripMarkers(after))
		rest = strings.TrimSpace(strings.TrimPrefix(rest, ExperienceHeading))
		return Document{
			Sidebar:   strings.TrimSpace(stripMarkers(before)),
			Main:      ExperienceHeading + "\n" + rest,
			Structure: StructureHeading,
		}
	}

	return Document{
		Sidebar:   ParseErrorSentinel,
		Main:      text,
		Structure: StructureUnrecognized,
	}
}

// Lines breaks a block into trimmed lines, dropping blank ones.
func Lines(block string) []string {
	block = strings.ReplaceAll(block, "\r\n", "\n")
	block = strings.ReplaceAll(block, "\r", "\n")

	raw := strings.Split(block, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func stripMarkers(text string) string {
	text = strings.ReplaceAll(text, SidebarMarker, "")
	return strings.ReplaceAll(text, MainMarker, "")
}
