package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_Typographic(t *testing.T) {
	in := "• Led “core” team – shipped ‘v2’ — on time…"
	assert.Equal(t, `- Led "core" team - shipped 'v2' - on time...`, Sanitize(in))
}

func TestSanitize_StripsMarkdown(t *testing.T) {
	assert.Equal(t, "Bold title", Sanitize("**Bold** title"))
	assert.Equal(t, "", Sanitize("---"))
	assert.Equal(t, " PROJECTS", Sanitize("### PROJECTS"))
}

func TestSanitize_Empty(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
}

func TestToLatin1(t *testing.T) {
	assert.Equal(t, "plain", ToLatin1("plain"))
	// é is in ISO-8859-1 and becomes a single byte
	assert.Equal(t, "r\xe9sum\xe9", ToLatin1("résumé"))
	assert.Equal(t, "Go ? Rust", ToLatin1("Go ✓ Rust"))
	assert.Equal(t, "??", ToLatin1("日本"))
}
