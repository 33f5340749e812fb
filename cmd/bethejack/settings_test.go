package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/bethejack/internal/config"
	"github.com/jonathan/bethejack/internal/profile"
	"github.com/jonathan/bethejack/internal/types"
)

// newFlagCommand returns a command with the job, model and output flags,
// parsed from args.
func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("verbose", false, "")
	addJobFlags(cmd)
	addModelFlags(cmd)
	cmd.Flags().String("layout", "", "")
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("out", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := resolveConfig(newFlagCommand(t))
	require.NoError(t, err)

	assert.Equal(t, config.Defaults(), cfg)
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	job := writeFile(t, "jd.txt", "Backend Engineer")
	cfgPath := writeFile(t, "bethejack.yaml", "layout: single-page\ndisplay_name: Alex Morgan\ntier: lite\n")

	cmd := newFlagCommand(t, "--config", cfgPath, "--job", job, "--tier", "standard", "--verbose")
	cfg, err := resolveConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "single-page", cfg.Layout)
	assert.Equal(t, "Alex Morgan", cfg.DisplayName)
	assert.Equal(t, "standard", cfg.Tier)
	assert.Equal(t, job, cfg.Job)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "gemini", cfg.Provider)
}

func TestResolveConfig_DatabaseURLFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg, err := resolveConfig(newFlagCommand(t))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)

	cfg, err = resolveConfig(newFlagCommand(t, "--db-url", "postgres://flag/db"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://flag/db", cfg.DatabaseURL)
}

func TestResolveConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad layout", []string{"--layout", "landscape"}, "config error"},
		{"bad provider", []string{"--provider", "openai"}, "unknown provider"},
		{"missing job file", []string{"--job", "/nonexistent/jd.txt"}, "job file not found"},
		{"job and url", []string{"--job", "-", "--job-url", "https://example.com"}, "mutually exclusive"},
		{"missing config file", []string{"--config", "/nonexistent/bethejack.json"}, "failed to load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveConfig(newFlagCommand(t, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJobSource(t *testing.T) {
	src, err := jobSource(config.Config{JobURL: "https://example.com/job"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/job", src)

	src, err = jobSource(config.Config{Job: "-"})
	require.NoError(t, err)
	assert.Equal(t, "-", src)

	_, err = jobSource(config.Config{})
	assert.ErrorContains(t, err, "--job or --job-url")
}

func TestLayoutOf(t *testing.T) {
	assert.Equal(t, types.LayoutSinglePage, layoutOf(config.Config{Layout: "india"}))
	assert.Equal(t, types.LayoutSidebar, layoutOf(config.Config{Layout: "dubai"}))
	assert.Equal(t, types.DefaultLayout, layoutOf(config.Config{Layout: "???"}))
}

func TestNewClient_RequiresKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Chdir(t.TempDir())

	_, err := newClient(context.Background(), config.Config{Provider: "anthropic"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestOpenProfiles_FileStore(t *testing.T) {
	dir := t.TempDir()
	store, closeFn, err := openProfiles(context.Background(), config.Config{ProfileDir: dir})
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, store.Save(context.Background(), "me", types.Profile{AboutMe: "Go developer"}))
	_, err = os.Stat(filepath.Join(dir, "me.json"))
	assert.NoError(t, err)

	p, err := profile.LoadOrDefault(context.Background(), store, "me")
	require.NoError(t, err)
	assert.Equal(t, "Go developer", p.AboutMe)
}

func TestReadDraft(t *testing.T) {
	path := writeFile(t, "draft.txt", "NAME\nAlex Morgan")

	text, err := readDraft(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "NAME\nAlex Morgan", text)

	text, err = readDraft("-", strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text)

	_, err = readDraft("", nil)
	assert.ErrorContains(t, err, "--draft is required")

	_, err = readDraft("/nonexistent/draft.txt", nil)
	assert.Error(t, err)
}

func TestReadPhoto(t *testing.T) {
	data, err := readPhoto("")
	require.NoError(t, err)
	assert.Nil(t, data)

	_, err = readPhoto("/nonexistent/me.png")
	assert.Error(t, err)
}
