// Package rendering lays out resume text onto fixed-size pages and writes PDF output.
package rendering

import "fmt"

// PhotoError reports a photo that could not be used. Step is "decode",
// "crop" or "encode". Render never returns it; the photo falls back.
type PhotoError struct {
	Step  string
	Cause error
}

func (e *PhotoError) Error() string {
	if e.Cause == nil {
		return "photo " + e.Step + " failed"
	}
	return fmt.Sprintf("photo %s failed: %v", e.Step, e.Cause)
}

func (e *PhotoError) Unwrap() error { return e.Cause }

// RenderError is returned when the PDF backend cannot produce a document.
type RenderError struct {
	Layout string
	Pages  int
	Cause  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s (%d pages): %v", e.Layout, e.Pages, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }
