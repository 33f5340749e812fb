package llm

import "strings"

// StripCodeFence removes a markdown code fence wrapped around a whole response.
// Models often fence plain text even when told not to. Text without a leading
// fence is returned trimmed and otherwise untouched.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Skip a language identifier on the fence line
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
