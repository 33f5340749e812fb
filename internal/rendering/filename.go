package rendering

import (
	"fmt"
	"regexp"

	"github.com/jonathan/bethejack/internal/types"
)

const maxSlugRunes = 20

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename builds the download name for a rendered resume:
// CV_<Layout>_<slug>.pdf, where slug is the first 20 characters of the job
// description with every non-alphanumeric character replaced by "_".
func Filename(mode types.LayoutMode, jobDescription string) string {
	slug := "Resume"
	if jobDescription != "" {
		runes := []rune(jobDescription)
		if len(runes) > maxSlugRunes {
			runes = runes[:maxSlugRunes]
		}
		slug = nonAlphanumeric.ReplaceAllString(string(runes), "_")
	}
	return fmt.Sprintf("CV_%s_%s.pdf", mode.Label(), slug)
}
