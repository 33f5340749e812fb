package rendering

import (
	"testing"

	"github.com/jonathan/bethejack/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		mode types.LayoutMode
		jd   string
		want string
	}{
		{"punctuation", types.LayoutSidebar, "Go Dev @ Acme!", "CV_Sidebar_Go_Dev___Acme_.pdf"},
		{"empty job description", types.LayoutSinglePage, "", "CV_SinglePage_Resume.pdf"},
		{"truncated to twenty", types.LayoutSidebar, "Senior Backend Engineer, Payments", "CV_Sidebar_Senior_Backend_Engin.pdf"},
		{"non ascii", types.LayoutSinglePage, "Développeur", "CV_SinglePage_D_veloppeur.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.mode, tt.jd))
		})
	}
}
