package rendering

import (
	"strings"

	"github.com/jonathan/bethejack/internal/layout"
)

// minInlineDetail is the narrowest first row a labeled skill detail may start
// on. Narrower than this and the detail begins on the next row.
const minInlineDetail = 10.0

// placer turns classified lines into draw instructions for one region.
// It holds no state of its own; the cursor is passed in and returned.
type placer struct {
	m     Measurer
	style style
}

func (p placer) place(class layout.LineClass, line string, cur PageCursor) ([]DrawInstruction, PageCursor) {
	switch class {
	case layout.BlankLine, layout.NameLabel:
		return nil, cur
	case layout.NameLine:
		return p.title(line, cur)
	case layout.SectionHeader:
		return p.header(line, cur)
	case layout.LabeledSkill:
		return p.labeled(line, cur)
	case layout.EntryTriplet:
		return p.entry(line, cur)
	case layout.BulletLine:
		return p.bullet(line, cur)
	case layout.ContactLine:
		return p.contact(line, cur)
	default:
		return p.plain(line, cur)
	}
}

// text builds a single-row text cell at the cursor's page and y.
func (p placer) text(cur PageCursor, x, w, h float64, s string, f Font, c Color, a Align) DrawInstruction {
	return DrawInstruction{
		Op:    OpText,
		Page:  cur.Page,
		X:     x,
		Y:     cur.Y,
		W:     w,
		H:     h,
		Text:  s,
		Font:  f,
		Color: c,
		Align: a,
	}
}

// paragraph wraps s to width w and emits one row per line of output.
func (p placer) paragraph(cur PageCursor, x, w float64, s string, f Font, c Color, lineH float64, a Align) ([]DrawInstruction, PageCursor) {
	rows := wrap(p.m, s, f, w, w)
	out := make([]DrawInstruction, 0, len(rows))
	for _, row := range rows {
		out = append(out, p.text(cur, x, w, lineH, row, f, c, a))
		cur = cur.down(lineH)
	}
	cur.Font = f
	cur.Color = c
	return out, cur
}

func (p placer) title(line string, cur PageCursor) ([]DrawInstruction, PageCursor) {
	s := p.style
	out, cur := p.paragraph(cur, s.col.X, s.col.W, line, s.font("B", s.titleSize), s.headerColor, s.titleLineH, AlignCenter)
	cur = cur.down(s.titleGap)
	cur.Font = s.body()
	cur.Color = s.bodyColor
	return out, cur
}

func (p placer) header(line string, cur PageCursor) ([]DrawInstruction, PageCursor) {
	s := p.style
	gap := s.headerGap
	if s.region == layout.RegionMain && cur.Y <= headerTopZone {
		gap = s.headerGapTop
	}
	cur = cur.down(gap)

	f := s.font("B", s.headerSize)
	in := p.text(cur, s.col.X, s.col.W, s.headerLineH, line, f, s.headerColor, AlignLeft)
	in.BorderBottom = true

	cur = cur.down(s.headerLineH + s.headerAfter)
	cur.Font = s.body()
	cur.Color = s.bodyColor
	return []DrawInstruction{in}, cur
}

// labeled draws "Category:" in bold followed by the detail in regular weight on
// the same row. The detail wraps under the label.
func (p placer) labeled(line string, cur PageCursor) ([]DrawInstruction, PageCursor) {
	s := p.style
	label, detail := layout.ParseLabeled(line)
	bold := s.font("B", s.skillSize)
	regular := s.font("", s.skillSize)
	lineH := s.bodyLineH

	labelW := p.m.Width(label+" ", bold)
	out := []DrawInstruction{
		p.text(cur, s.col.X, labelW+2*cellMargin, lineH, label, bold, s.bodyColor, AlignLeft),
	}

	firstX := s.col.X + labelW
	firstW := s.col.W - labelW
	row := cur
	if firstW-2*cellMargin < minInlineDetail {
		firstX, firstW = s.col.X, s.col.W
		row = row.down(lineH)
	}

	rows := wrap(p.m, detail, regular, firstW, s.col.W)
	for i, text := range rows {
		x, w := s.col.X, s.col.W
		if i == 0 {
			x, w = firstX, firstW
		}
		out = append(out, p.text(row, x, w, lineH, text, regular, s.bodyColor, AlignLeft))
		if i < len(rows)-1 {
			row = row.down(lineH)
		}
	}

	cur = row.down(s.skillAfter)
	cur.Font = regular
	cur.Color = s.bodyColor
	return out, cur
}

func (p placer) entry(line string, cur PageCursor) ([]DrawInstruction, PageCursor) {
	s := p.style
	e := layout.ParseEntry(line)
	bold := s.font("B", s.entrySize)
	italic := s.font("I", s.entrySize)
	cur = cur.down(s.entryGap)

	if s.region == layout.RegionFlow {
		return p.flowEntry(e, cur)
	}

	var out []DrawInstruction
	if e.IsJob() {
		out = append(out, p.text(cur, s.col.X, s.col.W, entryLineH, e.Second, bold, colorBlack, AlignLeft))
		cur = cur.down(entryLineH)
		out = append(out, p.text(cur, s.col.X, s.col.W, entryLineH, e.First+" -- "+e.Third, italic, colorMuted, AlignLeft))
		cur = cur.down(entryLineH)
	} else {
		out = append(out, p.text(cur, s.col.X, s.col.W, entryLineH, e.First, bold, colorBlack, AlignLeft))
		cur = cur.down(entryLineH)
		tech, next := p.paragraph(cur, s.col.X, s.col.W, "Tech: "+e.Second, italic, colorMuted, entryLineH, AlignLeft)
		out = append(out, tech...)
		cur = next
	}
	cur.Font = s.body()
	cur.Color = s.bodyColor
	return out, cur
}

// flowEntry puts the title on the left and the dates (or tech) right-aligned
// on the same row. Jobs get a second italic row with the role.
func (p placer) flowEntry(e layout.Entry, cur PageCursor) ([]DrawInstruction, PageCursor) {
	s := p.style
	bold := s.font("B", s.entrySize)
	italic := s.font("I", s.entrySize)

	left, right := e.First, e.Second
	if e.IsJob() {
		left, right = e.Second, e.Third
	}
	rightX := s.col.X + s.entryTitleW
	out := []DrawInstruction{
		p.text(cur, s.col.X, s.entryTitleW, entryLineH, left, bold, colorBlack, AlignLeft),
		p.text(cur, rightX, s.col.W-s.entryTitleW, entryLineH, right, italic, colorBlack, AlignRight),
	}
	cur = cur.down(entryLineH)
	if e.IsJob() {
		out = append(out, p.text(cur, s.col.X, s.col.W, entryLineH, e.First, italic, colorBlack, AlignLeft))
		cur = cur.down(entryLineH)
	}
	cur.Font = s.body()
	cur.Color = s.bodyColor
	return out, cur
}

func (p placer) contact(line string, cur PageCursor) ([]DrawInstruction, PageCursor) {
	s := p.style
	out, cur := p.paragraph(cur, s.col.X, s.col.W, line, s.body(), s.bodyColor, s.bodyLineH, AlignCenter)
	return out, cur.down(s.contactAfter)
}

func (p placer) bullet(line string, cur PageCursor) ([]DrawInstruction, PageCursor) {
	s := p.style
	f := s.body()
	indent := 0.0
	if s.bulletIndent > 0 {
		indent = p.m.Width(strings.Repeat(" ", s.bulletIndent), f)
	}
	return p.paragraph(cur, s.col.X+indent, s.col.W-indent, line, f, s.bodyColor, s.bodyLineH, AlignLeft)
}

func (p placer) plain(line string, cur PageCursor) ([]DrawInstruction, PageCursor) {
	s := p.style
	f := s.body()
	if s.region == layout.RegionSidebar && (strings.Contains(line, "@") || strings.Contains(line, "LinkedIn")) {
		f = s.font("", s.smallSize)
	}
	return p.paragraph(cur, s.col.X, s.col.W, line, f, s.bodyColor, s.bodyLineH, AlignLeft)
}
