package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"job_url": "https://example.com/job",
		"layout": "single-page",
		"display_name": "Alex Morgan",
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "single-page", cfg.Layout)
	assert.Equal(t, "Alex Morgan", cfg.DisplayName)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
job_url: https://example.com/job
layout: sidebar
provider: anthropic
tier: standard
use_browser: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "sidebar", cfg.Layout)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "standard", cfg.Tier)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_YAMLUnknownField(t *testing.T) {
	path := writeConfig(t, "config.yml", "max_bullets: 20\n")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	jobFile := writeConfig(t, "jd.txt", "Backend Engineer")

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"defaults", Defaults(), ""},
		{"existing job file", Config{Job: jobFile}, ""},
		{"job and url", Config{Job: jobFile, JobURL: "https://example.com"}, "mutually exclusive"},
		{"missing job file", Config{Job: "/nonexistent/jd.txt"}, "job file not found"},
		{"job from stdin", Config{Job: "-"}, ""},
		{"missing photo", Config{Photo: "/nonexistent/me.png"}, "photo file not found"},
		{"bad layout", Config{Layout: "landscape"}, "config error"},
		{"bad tier", Config{Tier: "ultra"}, "unknown tier"},
		{"bad provider", Config{Provider: "openai"}, "unknown provider"},
		{"bad port", Config{Port: 70000}, "port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Layout: "single-page", DisplayName: "Alex Morgan", Verbose: true}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "single-page", merged.Layout)
	assert.Equal(t, "Alex Morgan", merged.DisplayName)
	assert.Equal(t, "default", merged.Profile)
	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, "advanced", merged.Tier)
	assert.Equal(t, 8080, merged.Port)
	assert.True(t, merged.Verbose)

	// The receiver is not modified.
	assert.Empty(t, cfg.Profile)
}
