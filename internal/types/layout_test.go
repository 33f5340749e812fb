package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayoutMode(t *testing.T) {
	tests := []struct {
		input    string
		expected LayoutMode
	}{
		{"", LayoutSidebar},
		{"sidebar", LayoutSidebar},
		{"Dubai", LayoutSidebar},
		{"single-page", LayoutSinglePage},
		{"SINGLE", LayoutSinglePage},
		{" india ", LayoutSinglePage},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseLayoutMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestParseLayoutMode_Unknown(t *testing.T) {
	_, err := ParseLayoutMode("three-column")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown layout")
}

func TestLayoutMode_Label(t *testing.T) {
	assert.Equal(t, "Sidebar", LayoutSidebar.Label())
	assert.Equal(t, "SinglePage", LayoutSinglePage.Label())
}
