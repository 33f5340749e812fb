package ingestion

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	spaceRun     = regexp.MustCompile(`\s+`)
	blankLineRun = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and whitespace while keeping headings,
// bullets and leading indentation intact.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := strings.Repeat(" ", len(line)-len(trimmed))
	if isBulletLine(trimmed) {
		return indent + trimmed
	}
	return indent + spaceRun.ReplaceAllString(trimmed, " ")
}

func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// FromFile reads a job description from a text file.
func FromFile(path string) (*JobDescription, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return newJobDescription(CleanText(string(content)), path, ""), nil
}

// FromReader reads a job description from r, typically stdin.
func FromReader(r io.Reader) (*JobDescription, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return newJobDescription(CleanText(string(content)), "-", ""), nil
}

// FromText wraps text that is already in memory, such as a request body.
func FromText(text string) *JobDescription {
	return newJobDescription(CleanText(text), "", "")
}
