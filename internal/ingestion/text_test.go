package ingestion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \n  \n  ", ""},
		{"inner spaces collapse", "Line    with    multiple    spaces", "Line with multiple spaces"},
		{"blank runs capped at one", "Line 1\n\n\n\n\nLine 2", "Line 1\n\nLine 2"},
		{"line endings", "Line 1\r\nLine 2\rLine 3\nLine 4", "Line 1\nLine 2\nLine 3\nLine 4"},
		{"headings untouched", "#  Big   Title\n## Sub", "#  Big   Title\n## Sub"},
		{"bullets untouched", "- Go   and  SQL\n* Kafka\n• gRPC", "- Go   and  SQL\n* Kafka\n• gRPC"},
		{"indent kept after first line", "    Indented line\n  Less   indented", "Indented line\n  Less indented"},
		{"tab indent becomes spaces", "Title\n\tx  y", "Title\n x y"},
		{"unicode", "Test with émojis 🚀 and spéciàl chàracters", "Test with émojis 🚀 and spéciàl chàracters"},
		{
			"posting",
			"# Senior Software Engineer\r\n\r\n## Responsibilities\n   - Go experience\n* Go (5+ years)\n\n\n\nWe   value   ownership.",
			"# Senior Software Engineer\n\n## Responsibilities\n   - Go experience\n* Go (5+ years)\n\nWe value ownership.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CleanText(got), "cleaning is idempotent")
		})
	}
}

func TestFromFile_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("# Job Title\n\nDescription   here"), 0644))

	jd, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "# Job Title\n\nDescription here", jd.Text)
	assert.Equal(t, path, jd.Source)
	assert.Len(t, jd.Hash, 64)
	assert.NotEmpty(t, jd.Timestamp)
}

func TestFromFile_FileNotFound(t *testing.T) {
	jd, err := FromFile("/nonexistent/file.txt")

	require.Error(t, err)
	assert.Nil(t, jd)
	assert.Contains(t, err.Error(), "file not found")
}

func TestFromFile_HashFollowsContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("Content 2"), 0644))

	jdA1, err := FromFile(a)
	require.NoError(t, err)
	jdA2, err := FromFile(a)
	require.NoError(t, err)
	jdB, err := FromFile(b)
	require.NoError(t, err)

	assert.Equal(t, jdA1.Hash, jdA2.Hash)
	assert.NotEqual(t, jdA1.Hash, jdB.Hash)
}

func TestFromReader(t *testing.T) {
	jd, err := FromReader(strings.NewReader("  Backend Engineer  \n"))
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", jd.Text)
	assert.Equal(t, "-", jd.Source)
}

func TestFromText(t *testing.T) {
	jd := FromText("Go   developer\r\nRemote")
	assert.Equal(t, "Go developer\nRemote", jd.Text)
	assert.Empty(t, jd.Source)
}

func TestJobDescription_ToJSON(t *testing.T) {
	jd := FromText("Platform engineer")
	b, err := jd.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "Platform engineer", decoded["text"])
	assert.Equal(t, jd.Hash, decoded["hash"])
	assert.NotContains(t, decoded, "platform")
}
