// Package types provides type definitions for structured data used throughout the bethejack system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// LayoutMode selects one of the two fixed visual layouts of the rendered resume.
type LayoutMode string

const (
	// LayoutSidebar is the two-region page: a narrow left column plus a wide right column,
	// with an optional circular photo at the top of the sidebar.
	LayoutSidebar LayoutMode = "sidebar"
	// LayoutSinglePage is a single flowing column with a centered header block.
	LayoutSinglePage LayoutMode = "single-page"
)

// DefaultLayout is used when no layout is requested.
const DefaultLayout = LayoutSidebar

// ParseLayoutMode maps user input to a LayoutMode. The regional aliases ("dubai", "india")
// are accepted for compatibility with drafts produced by earlier versions of the tool.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sidebar", "dubai":
		return LayoutSidebar, nil
	case "single-page", "single", "singlepage", "india":
		return LayoutSinglePage, nil
	default:
		return "", fmt.Errorf("unknown layout %q (expected %q or %q)", s, LayoutSidebar, LayoutSinglePage)
	}
}

// Label returns the CamelCase name used in output filenames.
func (m LayoutMode) Label() string {
	if m == LayoutSinglePage {
		return "SinglePage"
	}
	return "Sidebar"
}

func (m LayoutMode) String() string {
	return string(m)
}
