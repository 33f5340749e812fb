package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/bethejack/internal/observability"
	"github.com/jonathan/bethejack/internal/rendering"
	"github.com/jonathan/bethejack/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an edited draft as a PDF",
	Long: `Lays out a plain text draft (file or "-" for stdin) in the chosen layout and
writes CV_<Layout>_<job>.pdf to the output directory.`,
	RunE: runRender,
}

var (
	renderDraftPath string
	renderJobTitle  string
)

func init() {
	renderCmd.Flags().StringVarP(&renderDraftPath, "draft", "d", "", `Draft text file, or "-" for stdin`)
	renderCmd.Flags().StringVar(&renderJobTitle, "job-title", "", "Job description text used to name the PDF")
	renderCmd.Flags().StringP("layout", "l", "", "Layout: sidebar or single-page")
	renderCmd.Flags().String("photo", "", "JPEG or PNG photo for the sidebar layout")
	renderCmd.Flags().String("name", "", "Display name drawn as the title")
	renderCmd.Flags().String("out", "", "Output directory")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	text, err := readDraft(renderDraftPath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	photo, err := readPhoto(cfg.Photo)
	if err != nil {
		return err
	}

	path, err := renderToFile(cmd.OutOrStdout(), text, renderJob{
		Layout:      layoutOf(cfg),
		DisplayName: cfg.DisplayName,
		Photo:       photo,
		JobTitle:    renderJobTitle,
		OutputDir:   cfg.OutputDir,
		Verbose:     cfg.Verbose,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✅ Resume written to %s\n", path)
	return nil
}

type renderJob struct {
	Layout      types.LayoutMode
	DisplayName string
	Photo       []byte
	JobTitle    string
	OutputDir   string
	Verbose     bool
}

// renderToFile renders text and writes the PDF under job.OutputDir, returning
// its path.
func renderToFile(w io.Writer, text string, job renderJob) (string, error) {
	pdf, pages, err := rendering.RenderPages(text, rendering.Options{
		Layout:      job.Layout,
		DisplayName: job.DisplayName,
		Photo:       job.Photo,
	})
	if err != nil {
		return "", err
	}

	dir := job.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, rendering.Filename(job.Layout, job.JobTitle))
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}

	if job.Verbose {
		observability.NewPrinter(w).PrintRender(path, pages, len(pdf))
	}
	return path, nil
}
