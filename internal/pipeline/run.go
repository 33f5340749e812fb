// Package pipeline provides the high-level orchestration for turning a job
// description and a stored profile into a rendered resume.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/bethejack/internal/generation"
	"github.com/jonathan/bethejack/internal/ingestion"
	"github.com/jonathan/bethejack/internal/llm"
	"github.com/jonathan/bethejack/internal/observability"
	"github.com/jonathan/bethejack/internal/profile"
	"github.com/jonathan/bethejack/internal/rendering"
	"github.com/jonathan/bethejack/internal/types"
)

// Step names reported through ProgressEvent.
const (
	StepIngest   = "ingest"
	StepGenerate = "generate"
	StepRender   = "render"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	// JobSource is a file path, an http(s) URL, or "-" for stdin.
	JobSource   string
	ProfileName string
	Profiles    profile.Store
	Drafter     generation.Drafter

	Layout      types.LayoutMode
	Tier        llm.ModelTier
	DisplayName string
	Photo       []byte
	OutputDir   string

	Ingest     ingestion.Options
	Verbose    bool
	Out        io.Writer
	OnProgress ProgressCallback
}

// RunResult describes what a pipeline run produced.
type RunResult struct {
	JobDescription *ingestion.JobDescription
	Draft          generation.Result
	DraftPath      string
	PDFPath        string
	Pages          int
}

func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

// RunPipeline loads the job description and the profile concurrently, asks
// the model for a draft, and renders it. The draft text is written next to
// the PDF so it can be edited and re-rendered.
func RunPipeline(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if opts.JobSource == "" {
		return nil, fmt.Errorf("job source is required")
	}
	if opts.Drafter == nil || opts.Profiles == nil {
		return nil, fmt.Errorf("drafter and profile store are required")
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)
	mode := opts.Layout
	if mode == "" {
		mode = types.DefaultLayout
	}
	if opts.ProfileName == "" {
		opts.ProfileName = profile.DefaultName
	}

	fmt.Fprintf(out, "Step 1/3: Loading job description and profile %q...\n", opts.ProfileName)

	g, gCtx := errgroup.WithContext(ctx)

	var jd *ingestion.JobDescription
	g.Go(func() error {
		var err error
		ingestOpts := opts.Ingest
		ingestOpts.Verbose = ingestOpts.Verbose || opts.Verbose
		jd, err = ingestion.Load(gCtx, opts.JobSource, ingestOpts)
		if err != nil {
			return fmt.Errorf("job ingestion failed: %w", err)
		}
		return nil
	})

	var prof types.Profile
	g.Go(func() error {
		var err error
		prof, err = profile.LoadOrDefault(gCtx, opts.Profiles, opts.ProfileName)
		if err != nil {
			return fmt.Errorf("loading profile failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if opts.Verbose {
		printer.PrintJobDescription(jd)
	}
	emitProgress(&opts, StepIngest, fmt.Sprintf("Loaded job description from %s", jd.Source), jd)

	fmt.Fprintf(out, "Step 2/3: Generating %s draft...\n", mode)
	draft := opts.Drafter.Generate(ctx, generation.Request{
		AboutMe:        prof.AboutMe,
		JobDescription: jd.Text,
		Layout:         mode,
		Tier:           opts.Tier,
	})
	if opts.Verbose {
		printer.PrintGeneration(draft)
	}
	if draft.Err != nil {
		return &RunResult{JobDescription: jd, Draft: draft}, fmt.Errorf("draft generation failed: %w", draft.Err)
	}
	emitProgress(&opts, StepGenerate, fmt.Sprintf("Generated draft with %s", draft.Model), nil)

	fmt.Fprintf(out, "Step 3/3: Rendering PDF...\n")
	pdf, pages, err := rendering.RenderPages(draft.Text, rendering.Options{
		Layout:      mode,
		DisplayName: opts.DisplayName,
		Photo:       opts.Photo,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering failed: %w", err)
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	pdfPath := filepath.Join(dir, rendering.Filename(mode, jd.Text))
	if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	draftPath := strings.TrimSuffix(pdfPath, ".pdf") + ".txt"
	if err := os.WriteFile(draftPath, []byte(draft.Text), 0644); err != nil {
		return nil, fmt.Errorf("failed to write draft: %w", err)
	}

	if opts.Verbose {
		printer.PrintRender(pdfPath, pages, len(pdf))
	}
	emitProgress(&opts, StepRender, fmt.Sprintf("Wrote %s", pdfPath), nil)

	fmt.Fprintf(out, "\n✅ Resume written to %s (draft: %s)\n", pdfPath, draftPath)
	return &RunResult{
		JobDescription: jd,
		Draft:          draft,
		DraftPath:      draftPath,
		PDFPath:        pdfPath,
		Pages:          pages,
	}, nil
}
