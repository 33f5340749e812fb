package layout

import "strings"

// Entry is a parsed pipe-delimited record.
type Entry struct {
	First  string
	Second string
	Third  string
}

// IsJob reports whether the record carries a third field (dates), making it a
// job or education entry rather than a project.
func (e Entry) IsJob() bool {
	return e.Third != ""
}

// ParseEntry splits "a | b | c". Fields beyond the third are ignored.
func ParseEntry(line string) Entry {
	parts := strings.Split(line, "|")
	field := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	return Entry{First: field(0), Second: field(1), Third: field(2)}
}

// ParseLabeled splits "- Category: details" into "Category:" and "details".
func ParseLabeled(line string) (label, detail string) {
	left, right, _ := strings.Cut(strings.TrimSpace(line), ":")
	label = strings.TrimSpace(strings.TrimLeft(left, "- ")) + ":"
	return label, strings.TrimSpace(right)
}
