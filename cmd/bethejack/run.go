package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/bethejack/internal/generation"
	"github.com/jonathan/bethejack/internal/ingestion"
	"github.com/jonathan/bethejack/internal/llm"
	"github.com/jonathan/bethejack/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Generate a draft and render it to PDF in one step",
	Long: `Orchestrates the whole flow: job description + profile -> draft -> PDF.

The draft text is saved next to the PDF so it can be edited and re-rendered
with "bethejack render". Configuration can be loaded from a JSON or YAML file
using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

func init() {
	addJobFlags(runCommand)
	addModelFlags(runCommand)
	runCommand.Flags().StringP("layout", "l", "", "Layout: sidebar or single-page")
	runCommand.Flags().String("photo", "", "JPEG or PNG photo for the sidebar layout")
	runCommand.Flags().String("name", "", "Display name drawn as the title")
	runCommand.Flags().String("out", "", "Output directory")
	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	source, err := jobSource(cfg)
	if err != nil {
		return err
	}
	photo, err := readPhoto(cfg.Photo)
	if err != nil {
		return err
	}

	profiles, closeProfiles, err := openProfiles(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProfiles()

	discover, _ := cmd.Flags().GetBool("discover-models")
	client, err := newClient(ctx, cfg, discover)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if cfg.Verbose {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Using %s model %s\n", cfg.Provider, client.GetModel(llm.ParseTier(cfg.Tier)))
	}

	_, err = pipeline.RunPipeline(ctx, pipeline.RunOptions{
		JobSource:   source,
		ProfileName: cfg.Profile,
		Profiles:    profiles,
		Drafter:     generation.New(client),
		Layout:      layoutOf(cfg),
		Tier:        llm.ParseTier(cfg.Tier),
		DisplayName: cfg.DisplayName,
		Photo:       photo,
		OutputDir:   cfg.OutputDir,
		Ingest: ingestion.Options{
			UseBrowser: cfg.UseBrowser,
			Stdin:      cmd.InOrStdin(),
		},
		Verbose: cfg.Verbose,
		Out:     cmd.OutOrStdout(),
	})
	return err
}
