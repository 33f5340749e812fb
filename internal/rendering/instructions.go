package rendering

// Op identifies the kind of a DrawInstruction.
type Op int

const (
	// OpAddPage starts a new page.
	OpAddPage Op = iota
	// OpFillRect paints a filled rectangle.
	OpFillRect
	// OpText draws one row of text in a cell.
	OpText
	// OpImage places an image.
	OpImage
)

func (o Op) String() string {
	switch o {
	case OpAddPage:
		return "add-page"
	case OpFillRect:
		return "fill-rect"
	case OpText:
		return "text"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// Font is a core PDF font selection. Style is "", "B", "I" or "BI".
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Bold reports whether the font has bold weight.
func (f Font) Bold() bool {
	return f.Style == "B" || f.Style == "BI"
}

// Italic reports whether the font is italic.
func (f Font) Italic() bool {
	return f.Style == "I" || f.Style == "BI"
}

// Color is an RGB color.
type Color struct {
	R, G, B int
}

// Align is a horizontal text alignment inside a cell.
type Align string

// Alignment values understood by the PDF backend.
const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Image is encoded image data ready to place on the page.
type Image struct {
	Name string
	Type string // "PNG" or "JPG"
	Data []byte
}

// DrawInstruction is one absolute drawing step. Coordinates are millimetres
// from the top-left corner of page Page.
type DrawInstruction struct {
	Op           Op
	Page         int
	X, Y, W, H   float64
	Text         string
	Font         Font
	Color        Color
	Align        Align
	BorderBottom bool
	Image        *Image
}

// PageCursor is the only mutable state of a render. It is passed by value
// through placement and never shared between renders.
type PageCursor struct {
	X, Y  float64
	Page  int
	Font  Font
	Color Color
}

// down returns the cursor moved h units down.
func (c PageCursor) down(h float64) PageCursor {
	c.Y += h
	return c
}
