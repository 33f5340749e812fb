// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jonathan/bethejack/internal/llm"
	"github.com/jonathan/bethejack/internal/types"
)

// Config is the file-backed configuration. All fields are optional; missing
// values fall back to defaults or to CLI flags.
type Config struct {
	// Inputs
	Job        string `json:"job,omitempty" yaml:"job,omitempty"`                 // Path to job description text file
	JobURL     string `json:"job_url,omitempty" yaml:"job_url,omitempty"`         // URL to fetch the job description from
	Profile    string `json:"profile,omitempty" yaml:"profile,omitempty"`         // Profile name in the profile store
	ProfileDir string `json:"profile_dir,omitempty" yaml:"profile_dir,omitempty"` // Directory of profile JSON files
	Photo      string `json:"photo,omitempty" yaml:"photo,omitempty"`             // Optional jpg/png for the sidebar

	// Output
	Layout      string `json:"layout,omitempty" yaml:"layout,omitempty"`             // sidebar or single-page
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"` // Name drawn as the title
	OutputDir   string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Generation
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"` // gemini or anthropic
	Tier     string `json:"tier,omitempty" yaml:"tier,omitempty"`         // lite, standard, advanced
	APIKey   string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty" yaml:"use_browser,omitempty"` // Headless browser for SPA job boards
	Verbose     bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Profile:    "default",
		ProfileDir: "profiles",
		Layout:     string(types.LayoutSidebar),
		OutputDir:  ".",
		Provider:   string(llm.ProviderGemini),
		Tier:       string(llm.TierAdvanced),
		Port:       8080,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are checked by the commands after flags are merged.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Layout != "" {
		if _, err := types.ParseLayoutMode(c.Layout); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	switch llm.ModelTier(c.Tier) {
	case "", llm.TierLite, llm.TierStandard, llm.TierAdvanced:
	default:
		return fmt.Errorf("config error: unknown tier %q", c.Tier)
	}
	if c.Provider != "" {
		if _, err := llm.ParseProvider(c.Provider); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Job != "" && c.Job != "-" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Photo != "" {
		if _, err := os.Stat(c.Photo); os.IsNotExist(err) {
			return fmt.Errorf("config error: photo file not found: %s", c.Photo)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&result.Job, defaults.Job)
	fill(&result.JobURL, defaults.JobURL)
	fill(&result.Profile, defaults.Profile)
	fill(&result.ProfileDir, defaults.ProfileDir)
	fill(&result.Photo, defaults.Photo)
	fill(&result.Layout, defaults.Layout)
	fill(&result.DisplayName, defaults.DisplayName)
	fill(&result.OutputDir, defaults.OutputDir)
	fill(&result.Provider, defaults.Provider)
	fill(&result.Tier, defaults.Tier)
	fill(&result.APIKey, defaults.APIKey)
	fill(&result.DatabaseURL, defaults.DatabaseURL)

	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bools cannot distinguish unset from false; CLI flags always win.

	return result
}
