// Package generation turns a skeleton work history and a job description into
// an editable resume draft using a language model.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/bethejack/internal/llm"
	"github.com/jonathan/bethejack/internal/prompts"
	"github.com/jonathan/bethejack/internal/types"
)

// ErrorPrefix starts the draft text when generation failed. The error travels
// in-band so the user sees it in the editor and can still edit or render.
const ErrorPrefix = "Error: "

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Request is one draft generation.
type Request struct {
	AboutMe        string
	JobDescription string
	Layout         types.LayoutMode
	Tier           llm.ModelTier
}

// Result is a generated draft. On failure Text holds ErrorPrefix plus the error
// message and Err holds the cause.
type Result struct {
	Text     string
	Model    string
	Duration time.Duration
	Err      error
}

// Drafter produces draft text. *Generator satisfies it.
type Drafter interface {
	Generate(ctx context.Context, req Request) Result
}

// Generator produces drafts with an llm.Client.
type Generator struct {
	client llm.Client
}

// New returns a Generator backed by client.
func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate builds the prompt for req and asks the model for a draft. It never
// returns an error value; failures are reported in the Result.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	tier := req.Tier
	if tier == "" {
		tier = llm.TierStandard
	}
	model := g.client.GetModel(tier)

	prompt, err := BuildPrompt(req)
	if err != nil {
		return failed(model, 0, err)
	}

	start := time.Now()
	text, err := g.client.GenerateContent(ctx, prompt, tier)
	elapsed := time.Since(start)
	if err != nil {
		log.Printf("[generate] %s failed after %s: %v", model, elapsed.Round(time.Millisecond), err)
		return failed(model, elapsed, err)
	}

	text = llm.StripCodeFence(text)
	if text == "" {
		return failed(model, elapsed, ErrEmptyResponse)
	}

	log.Printf("[generate] %s produced %d characters for %s layout in %s", model, len(text), req.Layout, elapsed.Round(time.Millisecond))
	return Result{Text: text, Model: model, Duration: elapsed}
}

func failed(model string, elapsed time.Duration, err error) Result {
	return Result{
		Text:     ErrorPrefix + err.Error(),
		Model:    model,
		Duration: elapsed,
		Err:      err,
	}
}

// IsErrorText reports whether draft text is an in-band generation error.
func IsErrorText(text string) bool {
	return strings.HasPrefix(text, ErrorPrefix)
}

// BuildPrompt fills the draft template for the requested layout.
func BuildPrompt(req Request) (string, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return "", fmt.Errorf("job description is required")
	}
	mode := req.Layout
	if mode == "" {
		mode = types.DefaultLayout
	}

	set, err := prompts.Load(prompts.GenerationFile)
	if err != nil {
		return "", err
	}
	data := map[string]string{
		"JobDescription": strings.TrimSpace(req.JobDescription),
		"AboutMe":        strings.TrimSpace(req.AboutMe),
	}
	for placeholder, part := range map[string]string{
		"ContactInstruction": "contact",
		"LayoutInstruction":  "layout",
		"OutputStructure":    "structure",
	} {
		value, err := set.Get(string(mode) + "-" + part)
		if err != nil {
			return "", err
		}
		data[placeholder] = value
	}

	return prompts.Execute(prompts.GenerationFile, "resume-draft", data)
}
