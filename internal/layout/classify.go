package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineClass is the presentation category of a single line.
type LineClass int

const (
	// BlankLine is skipped.
	BlankLine LineClass = iota
	// NameLabel is the literal NAME token preceding the candidate name.
	NameLabel
	// NameLine is the candidate name, rendered as the title.
	NameLine
	// SectionHeader is a short all-uppercase line.
	SectionHeader
	// LabeledSkill is "- Category: details".
	LabeledSkill
	// EntryTriplet is a pipe-delimited job or project record.
	EntryTriplet
	// BulletLine starts with "-".
	BulletLine
	// ContactLine is a line of the centered single-page header block.
	ContactLine
	// PlainText is the fallback.
	PlainText
)

var lineClassNames = map[LineClass]string{
	BlankLine:     "blank",
	NameLabel:     "name-label",
	NameLine:      "name",
	SectionHeader: "header",
	LabeledSkill:  "labeled-skill",
	EntryTriplet:  "entry",
	BulletLine:    "bullet",
	ContactLine:   "contact",
	PlainText:     "text",
}

func (c LineClass) String() string {
	if name, ok := lineClassNames[c]; ok {
		return name
	}
	return "unknown"
}

// Region is the page area a line is placed in.
type Region int

const (
	// RegionSidebar is the narrow left column of the sidebar layout.
	RegionSidebar Region = iota
	// RegionMain is the wide right column of the sidebar layout.
	RegionMain
	// RegionFlow is the single column of the single-page layout.
	RegionFlow
)

func (r Region) String() string {
	switch r {
	case RegionSidebar:
		return "sidebar"
	case RegionMain:
		return "main"
	case RegionFlow:
		return "flow"
	default:
		return "unknown"
	}
}

// NameLabelToken is the standalone label the output template puts above the name.
const NameLabelToken = "NAME"

const (
	maxNameLen          = 30
	maxSidebarHeaderLen = 25
	maxHeaderLen        = 40
	maxSkillLabelLen    = 30

	// NameZoneSidebar and NameZoneFlow bound how far down the page a name line may appear.
	NameZoneSidebar = 90.0
	NameZoneFlow    = 40.0
)

// Context is the positional information Classify needs about a line.
type Context struct {
	Region Region
	// Y is the vertical cursor position at which the line would be placed.
	Y float64
	// AfterNameLabel is set when the previous line was the NAME label.
	AfterNameLabel bool
	// InHeaderBlock is set on the single-page layout until the first section header.
	InHeaderBlock bool
	// DisplayName, when set, also marks an exactly matching line as the name.
	DisplayName string
}

// Classify assigns a LineClass to one line. Rules are evaluated in order and the
// first match wins; the result depends only on the line and ctx.
func Classify(line string, ctx Context) LineClass {
	line = strings.TrimSpace(line)
	length := utf8.RuneCountInString(line)

	switch {
	case line == "":
		return BlankLine
	case line == NameLabelToken:
		return NameLabel
	case isNameLine(line, length, ctx):
		return NameLine
	case isSectionHeader(line, length, ctx.Region):
		return SectionHeader
	case isLabeledSkill(line):
		return LabeledSkill
	case ctx.Region == RegionFlow && ctx.InHeaderBlock:
		return ContactLine
	case isEntry(line, ctx.Region):
		return EntryTriplet
	case strings.HasPrefix(line, "-"):
		return BulletLine
	default:
		return PlainText
	}
}

func isNameLine(line string, length int, ctx Context) bool {
	if length >= maxNameLen {
		return false
	}
	zone := NameZoneSidebar
	if ctx.Region == RegionFlow {
		zone = NameZoneFlow
	}
	if ctx.Y >= zone {
		return false
	}
	if ctx.AfterNameLabel {
		return true
	}
	return ctx.DisplayName != "" && line == strings.TrimSpace(ctx.DisplayName)
}

func isSectionHeader(line string, length int, region Region) bool {
	if strings.HasPrefix(line, "-") || !isUpper(line) {
		return false
	}
	if region == RegionSidebar {
		return length < maxSidebarHeaderLen
	}
	return length < maxHeaderLen && !strings.Contains(line, "UNIVERSITY")
}

// isUpper reports whether line has at least one cased letter and no lowercase ones.
func isUpper(line string) bool {
	cased := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func isLabeledSkill(line string) bool {
	if !strings.HasPrefix(line, "-") {
		return false
	}
	label, _, found := strings.Cut(line, ":")
	if !found {
		return false
	}
	label = strings.TrimSpace(strings.TrimLeft(label, "- "))
	return label != "" && utf8.RuneCountInString(label) < maxSkillLabelLen
}

func isEntry(line string, region Region) bool {
	if region == RegionSidebar || !strings.Contains(line, "|") {
		return false
	}
	return !strings.Contains(strings.ToLower(line), "university")
}
