package rendering

import (
	"log"

	"github.com/jonathan/bethejack/internal/layout"
	"github.com/jonathan/bethejack/internal/types"
)

// Options configures one render.
type Options struct {
	Layout types.LayoutMode
	// DisplayName, when set, is recognised as the name line wherever it
	// appears near the top of the page.
	DisplayName string
	// Photo is optional JPEG or PNG data. It is only placed in the sidebar layout.
	Photo []byte
}

// Render lays out text and writes it as a PDF. Malformed text and unusable
// photos degrade the output instead of failing; the only error is a backend
// failure to produce the file.
func Render(text string, opts Options) ([]byte, error) {
	data, _, err := RenderPages(text, opts)
	return data, err
}

// RenderPages is Render that also reports the number of pages written.
func RenderPages(text string, opts Options) ([]byte, int, error) {
	instrs := Layout(text, opts, NewMeasurer())
	pages := PageCount(instrs)
	data, err := writePDF(instrs)
	if err != nil {
		return nil, 0, &RenderError{Layout: string(opts.Layout), Pages: pages, Cause: err}
	}
	log.Printf("[render] %s: %d instructions, %d pages, %d bytes", opts.Layout, len(instrs), pages, len(data))
	return data, pages, nil
}

// Layout returns the draw instructions for text. The result depends only on the
// arguments.
func Layout(text string, opts Options, m Measurer) []DrawInstruction {
	return layoutDocument(text, opts, m, nil)
}

// TracedLine records how one input line was classified and where it landed.
type TracedLine struct {
	Region layout.Region
	Class  layout.LineClass
	Page   int
	Y      float64
	Text   string
}

// Trace lays out text like Layout and returns the classification of every
// non-blank line in drawing order.
func Trace(text string, opts Options, m Measurer) []TracedLine {
	var lines []TracedLine
	layoutDocument(text, opts, m, func(l TracedLine) { lines = append(lines, l) })
	return lines
}

func layoutDocument(text string, opts Options, m Measurer, record func(TracedLine)) []DrawInstruction {
	doc := layout.Split(text, opts.Layout)
	if opts.Layout == types.LayoutSinglePage {
		return layoutSinglePage(doc, opts, m, record)
	}
	return layoutSidebar(doc, opts, m, record)
}

// PageCount returns the number of pages an instruction stream produces.
func PageCount(instrs []DrawInstruction) int {
	n := 0
	for _, in := range instrs {
		if in.Op == OpAddPage {
			n++
		}
	}
	return n
}

func sidebarPage(page int) []DrawInstruction {
	return []DrawInstruction{
		{Op: OpAddPage, Page: page},
		{Op: OpFillRect, Page: page, X: 0, Y: 0, W: SidebarBand, H: PageHeight, Color: colorBand},
	}
}

func plainPage(page int) []DrawInstruction {
	return []DrawInstruction{{Op: OpAddPage, Page: page}}
}

func layoutSidebar(doc layout.Document, opts Options, m Measurer, record func(TracedLine)) []DrawInstruction {
	out := sidebarPage(0)

	side := walker{p: placer{m: m, style: sidebarStyle()}, displayName: opts.DisplayName, record: record}
	cur := startCursor(side.p.style)
	if img := preparePhoto(opts.Photo); img != nil {
		out = append(out, DrawInstruction{Op: OpImage, X: photoX, Y: photoY, W: photoW, Image: img})
		cur.Y = photoAfter
	}
	out = side.walk(out, doc.Sidebar, cur)

	main := walker{p: placer{m: m, style: mainStyle()}, displayName: opts.DisplayName, newPage: sidebarPage, record: record}
	return main.walk(out, doc.Main, startCursor(main.p.style))
}

func layoutSinglePage(doc layout.Document, opts Options, m Measurer, record func(TracedLine)) []DrawInstruction {
	flow := walker{p: placer{m: m, style: flowStyle()}, displayName: opts.DisplayName, newPage: plainPage, record: record}
	return flow.walk(plainPage(0), doc.Main, startCursor(flow.p.style))
}

func startCursor(s style) PageCursor {
	return PageCursor{X: s.col.X, Y: s.top, Font: s.body(), Color: s.bodyColor}
}

// walker places the lines of one region. When newPage is non-nil the region
// paginates: a line starting below PageBreakY goes to a fresh page.
type walker struct {
	p           placer
	displayName string
	newPage     func(int) []DrawInstruction
	record      func(TracedLine)
}

func (w walker) walk(out []DrawInstruction, block string, cur PageCursor) []DrawInstruction {
	region := w.p.style.region
	ctx := layout.Context{
		Region:        region,
		DisplayName:   w.displayName,
		InHeaderBlock: region == layout.RegionFlow,
	}

	for _, line := range layout.Lines(layout.Sanitize(block)) {
		if w.newPage != nil && cur.Y > PageBreakY {
			cur.Page++
			out = append(out, w.newPage(cur.Page)...)
			cur.Y = w.p.style.top
		}

		ctx.Y = cur.Y
		class := layout.Classify(line, ctx)
		if w.record != nil {
			w.record(TracedLine{Region: region, Class: class, Page: cur.Page, Y: cur.Y, Text: line})
		}

		var placed []DrawInstruction
		placed, cur = w.p.place(class, line, cur)
		out = append(out, placed...)

		ctx.AfterNameLabel = class == layout.NameLabel
		if class == layout.SectionHeader {
			ctx.InHeaderBlock = false
		}
	}
	return out
}
