package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/bethejack/internal/generation"
	"github.com/jonathan/bethejack/internal/ingestion"
	"github.com/jonathan/bethejack/internal/llm"
	"github.com/jonathan/bethejack/internal/observability"
	"github.com/jonathan/bethejack/internal/profile"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an editable resume draft for a job description",
	Long: `Loads the job description (file, URL or "-" for stdin) and a stored profile,
asks the model for a draft in the chosen layout and writes the plain text draft.
Edit the draft, then turn it into a PDF with "bethejack render".`,
	RunE: runGenerate,
}

var generateDraftOut string

func init() {
	addJobFlags(generateCmd)
	addModelFlags(generateCmd)
	generateCmd.Flags().StringP("layout", "l", "", "Layout: sidebar or single-page")
	generateCmd.Flags().StringVarP(&generateDraftOut, "draft-out", "o", "", "Write the draft to this file instead of stdout")
	rootCmd.AddCommand(generateCmd)
}

// addJobFlags registers the job description and profile inputs.
func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("job", "j", "", `Path to job description text file, or "-" for stdin (mutually exclusive with --job-url)`)
	cmd.Flags().String("job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	cmd.Flags().Bool("use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	cmd.Flags().StringP("profile", "p", "", "Profile name")
	cmd.Flags().String("profile-dir", "", "Directory of profile JSON files")
	cmd.Flags().String("db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
}

// addModelFlags registers the generation provider settings.
func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().String("provider", "", "Model provider: gemini or anthropic")
	cmd.Flags().String("tier", "", "Model tier: lite, standard or advanced")
	cmd.Flags().String("api-key", "", "Provider API key (defaults to GEMINI_API_KEY or ANTHROPIC_API_KEY)")
	cmd.Flags().Bool("discover-models", false, "Pick the Gemini model from those the key can access")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	source, err := jobSource(cfg)
	if err != nil {
		return err
	}

	jd, err := ingestion.Load(ctx, source, ingestion.Options{
		UseBrowser: cfg.UseBrowser,
		Verbose:    cfg.Verbose,
		Stdin:      cmd.InOrStdin(),
	})
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}

	profiles, closeProfiles, err := openProfiles(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProfiles()
	prof, err := profile.LoadOrDefault(ctx, profiles, cfg.Profile)
	if err != nil {
		return err
	}

	discover, _ := cmd.Flags().GetBool("discover-models")
	client, err := newClient(ctx, cfg, discover)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	res := generation.New(client).Generate(ctx, generation.Request{
		AboutMe:        prof.AboutMe,
		JobDescription: jd.Text,
		Layout:         layoutOf(cfg),
		Tier:           llm.ParseTier(cfg.Tier),
	})
	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintGeneration(res)
	}

	if err := writeDraft(cmd.OutOrStdout(), generateDraftOut, res.Text); err != nil {
		return err
	}
	return draftErr(res)
}

// writeDraft writes text to path, or to w when path is empty. The in-band
// error text of a failed generation is written too so it can be inspected.
func writeDraft(w io.Writer, path, text string) error {
	if path == "" {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Draft written to %s\n", path)
	return nil
}
