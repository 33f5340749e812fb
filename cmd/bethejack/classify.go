package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/bethejack/internal/layout"
	"github.com/jonathan/bethejack/internal/observability"
	"github.com/jonathan/bethejack/internal/rendering"
	"github.com/jonathan/bethejack/internal/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Show how a draft is split and how each line is classified",
	Long: `Debugging aid for draft formatting. Prints the detected structure and region
blocks, then every non-blank line with its region, class, page and position in
drawing order.`,
	RunE: runClassify,
}

var classifyDraftPath string

func init() {
	classifyCmd.Flags().StringVarP(&classifyDraftPath, "draft", "d", "", `Draft text file, or "-" for stdin`)
	classifyCmd.Flags().StringP("layout", "l", "", "Layout: sidebar or single-page")
	classifyCmd.Flags().String("name", "", "Display name recognised as the title")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	text, err := readDraft(classifyDraftPath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	classify(cmd.OutOrStdout(), text, layoutOf(cfg), cfg.DisplayName)
	return nil
}

func classify(w io.Writer, text string, mode types.LayoutMode, displayName string) {
	p := observability.NewPrinter(w)
	p.PrintDocument(layout.Split(text, mode))
	p.PrintTrace(rendering.Trace(text, rendering.Options{
		Layout:      mode,
		DisplayName: displayName,
	}, rendering.NewMeasurer()))
}
