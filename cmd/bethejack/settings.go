package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/bethejack/internal/config"
	"github.com/jonathan/bethejack/internal/db"
	"github.com/jonathan/bethejack/internal/generation"
	"github.com/jonathan/bethejack/internal/llm"
	"github.com/jonathan/bethejack/internal/profile"
	"github.com/jonathan/bethejack/internal/types"
)

// resolveConfig loads the --config file, applies the flags that were set on
// cmd, and fills the rest from defaults and the environment.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	applyFlags(cmd, &cfg)
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyFlags copies every explicitly set flag over the file configuration.
// Flags a command does not define are never Changed.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	str := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	boolean := func(name string, dst *bool) {
		if flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}

	str("job", &cfg.Job)
	str("job-url", &cfg.JobURL)
	str("profile", &cfg.Profile)
	str("profile-dir", &cfg.ProfileDir)
	str("photo", &cfg.Photo)
	str("layout", &cfg.Layout)
	str("name", &cfg.DisplayName)
	str("out", &cfg.OutputDir)
	str("provider", &cfg.Provider)
	str("tier", &cfg.Tier)
	str("api-key", &cfg.APIKey)
	str("db-url", &cfg.DatabaseURL)
	boolean("use-browser", &cfg.UseBrowser)
	boolean("verbose", &cfg.Verbose)
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
}

// jobSource returns the URL, path or "-" the job description is read from.
func jobSource(cfg config.Config) (string, error) {
	switch {
	case cfg.JobURL != "":
		return cfg.JobURL, nil
	case cfg.Job != "":
		return cfg.Job, nil
	default:
		return "", fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
}

func layoutOf(cfg config.Config) types.LayoutMode {
	mode, err := types.ParseLayoutMode(cfg.Layout)
	if err != nil {
		return types.DefaultLayout
	}
	return mode
}

// newClient builds the model client for the configured provider. The API key
// comes from the config, then the provider's environment variable, then .env.
func newClient(ctx context.Context, cfg config.Config, discover bool) (llm.Client, error) {
	provider, err := llm.ParseProvider(cfg.Provider)
	if err != nil {
		return nil, err
	}
	client, err := llm.NewClient(ctx, llm.ConfigFor(provider), llm.DefaultCredentials(provider, cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("%w (set %s or pass --api-key)", err, llm.APIKeyEnvVar(provider))
	}
	if gemini, ok := client.(*llm.GeminiClient); ok && discover {
		gemini.UseDiscovery(nil)
	}
	return client, nil
}

// openProfiles returns the PostgreSQL profile store when a database is
// configured, otherwise the profile directory. The returned func releases it.
func openProfiles(ctx context.Context, cfg config.Config) (profile.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		return profile.NewFileStore(cfg.ProfileDir), func() {}, nil
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, nil, err
	}
	return db.Profiles{DB: database}, database.Close, nil
}

func readPhoto(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	return data, nil
}

// readDraft reads draft text from a file, or from stdin when path is "-".
func readDraft(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--draft is required")
	}
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}
	return string(data), nil
}

// draftErr reports a failed generation as an error while keeping the in-band
// text available to the caller.
func draftErr(res generation.Result) error {
	if res.Err != nil {
		return fmt.Errorf("draft generation failed: %w", res.Err)
	}
	return nil
}
