package layout

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// typographic maps punctuation the PDF core fonts cannot show to ASCII.
var typographic = strings.NewReplacer(
	"•", "-", // bullet
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "...",
)

// markdown emphasis and separators the model emits despite instructions
var markdownNoise = strings.NewReplacer(
	"**", "",
	"---", "",
	"###", "",
)

// Sanitize normalizes typographic punctuation to ASCII and strips literal
// markdown emphasis and separator sequences.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return markdownNoise.Replace(typographic.Replace(text))
}

// ToLatin1 returns text encoded as ISO-8859-1 bytes (held in a string), with '?'
// in place of every rune the encoding cannot represent.
func ToLatin1(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if c, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}
