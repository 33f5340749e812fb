package rendering

import (
	"bytes"
	"fmt"
	"log"

	"github.com/jonathan/bethejack/internal/layout"
	"github.com/jung-kurt/gofpdf"
)

// writePDF executes instructions against a gofpdf document and returns the
// encoded PDF.
func writePDF(instrs []DrawInstruction) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(cellMargin)
	pdf.SetCreator("bethejack", true)

	for i, in := range instrs {
		switch in.Op {
		case OpAddPage:
			pdf.AddPage()
		case OpFillRect:
			pdf.SetFillColor(in.Color.R, in.Color.G, in.Color.B)
			pdf.Rect(in.X, in.Y, in.W, in.H, "F")
		case OpText:
			drawText(pdf, in)
		case OpImage:
			drawImage(pdf, in)
		}
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("instruction %d (%s): %w", i, in.Op, err)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawText(pdf *gofpdf.Fpdf, in DrawInstruction) {
	pdf.SetFont(in.Font.Family, in.Font.Style, in.Font.Size)
	pdf.SetTextColor(in.Color.R, in.Color.G, in.Color.B)
	pdf.SetXY(in.X, in.Y)
	border := ""
	if in.BorderBottom {
		border = "B"
	}
	pdf.CellFormat(in.W, in.H, layout.ToLatin1(in.Text), border, 0, string(in.Align), false, 0, "")
}

// drawImage places an image. An image the backend cannot read is logged and
// skipped rather than failing the document.
func drawImage(pdf *gofpdf.Fpdf, in DrawInstruction) {
	if in.Image == nil {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: in.Image.Type}
	pdf.RegisterImageOptionsReader(in.Image.Name, opts, bytes.NewReader(in.Image.Data))
	if !pdf.Ok() {
		log.Printf("[render] photo skipped: %v", pdf.Error())
		pdf.ClearError()
		return
	}
	pdf.ImageOptions(in.Image.Name, in.X, in.Y, in.W, in.H, false, opts, 0, "")
}
