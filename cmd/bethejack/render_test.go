package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/bethejack/internal/types"
)

const sidebarDraft = `[SIDEBAR_START]
NAME
Alex Morgan
SKILLS
- Languages: Go, SQL
[MAIN_START]
PROFESSIONAL EXPERIENCE
Senior Engineer | Acme Corp | 2020-2023
- Built the payments ledger`

func TestRenderToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var log bytes.Buffer

	path, err := renderToFile(&log, sidebarDraft, renderJob{
		Layout:    types.LayoutSidebar,
		JobTitle:  "Staff Engineer",
		OutputDir: dir,
		Verbose:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "CV_Sidebar_Staff_Engineer.pdf"), path)
	pdf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Contains(t, log.String(), "RENDERED PDF")
	assert.Contains(t, log.String(), "Pages: 1")
}

func TestRenderToFile_NoJobTitle(t *testing.T) {
	path, err := renderToFile(&bytes.Buffer{}, "Plain text only", renderJob{
		Layout:    types.LayoutSinglePage,
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, "CV_SinglePage_Resume.pdf", filepath.Base(path))
}

func TestClassify(t *testing.T) {
	var out bytes.Buffer

	classify(&out, sidebarDraft, types.LayoutSidebar, "")

	s := out.String()
	assert.Contains(t, s, "DOCUMENT")
	assert.Contains(t, s, "Structure: markers")
	assert.Contains(t, s, "LINE CLASSIFICATION")
	assert.Contains(t, s, "labeled-skill")
	assert.Contains(t, s, "entry")
	assert.Contains(t, s, "Alex Morgan")
}

func TestClassify_SinglePage(t *testing.T) {
	var out bytes.Buffer

	classify(&out, "Alex Morgan\nalex@example.com | Porto\nEXPERIENCE\n- Shipped things", types.LayoutSinglePage, "Alex Morgan")

	s := out.String()
	assert.Contains(t, s, "Structure: flow")
	assert.NotContains(t, s, "Sidebar:")
	assert.Contains(t, s, "contact")
}
