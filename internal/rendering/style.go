package rendering

import "github.com/jonathan/bethejack/internal/layout"

// Page geometry in millimetres (A4 portrait).
const (
	PageWidth   = 210.0
	PageHeight  = 297.0
	PageBreakY  = 280.0
	SidebarBand = 70.0

	// cellMargin is the inner horizontal padding of every text cell.
	cellMargin = 1.0

	// headerTopZone is the y above which main-column headers get the smaller gap.
	headerTopZone = 60.0
)

var (
	colorNavy        = Color{0, 45, 95}
	colorSidebarText = Color{50, 50, 50}
	colorBlack       = Color{0, 0, 0}
	colorMuted       = Color{80, 80, 80}
	colorBand        = Color{240, 242, 245}
)

// column is the horizontal extent of a region.
type column struct {
	X, W float64
}

// style holds every layout constant for one region. Placement reads it and
// never changes it.
type style struct {
	region layout.Region
	col    column
	family string
	top    float64

	bodySize  float64
	bodyLineH float64
	bodyColor Color
	smallSize float64

	titleSize  float64
	titleLineH float64
	titleGap   float64

	headerSize   float64
	headerLineH  float64
	headerGap    float64
	headerGapTop float64
	headerAfter  float64
	headerColor  Color

	entrySize    float64
	entryGap     float64
	entryTitleW  float64
	bulletIndent int // spaces
	skillSize    float64
	skillAfter   float64
	contactAfter float64
}

// entryLineH is the row height of both rows of a pipe-delimited entry.
const entryLineH = 5.0

func sidebarStyle() style {
	return style{
		region: layout.RegionSidebar,
		col:    column{X: 5, W: 60},
		family: "Arial",
		top:    20,

		bodySize:  9,
		bodyLineH: 4.5,
		bodyColor: colorSidebarText,
		smallSize: 8,

		titleSize:  18,
		titleLineH: 8,
		titleGap:   3,

		headerSize:   9,
		headerLineH:  5,
		headerGap:    5,
		headerGapTop: 5,
		headerAfter:  1,
		headerColor:  colorNavy,

		skillSize:  8.5,
		skillAfter: 5,
	}
}

func mainStyle() style {
	return style{
		region: layout.RegionMain,
		col:    column{X: SidebarBand + 5, W: PageWidth - SidebarBand - 15},
		family: "Arial",
		top:    20,

		bodySize:  9,
		bodyLineH: 4.5,
		bodyColor: colorBlack,
		smallSize: 9,

		titleSize:  18,
		titleLineH: 8,
		titleGap:   3,

		headerSize:   12,
		headerLineH:  8,
		headerGap:    5,
		headerGapTop: 2,
		headerAfter:  3,
		headerColor:  colorNavy,

		entrySize:    10,
		entryGap:     3,
		bulletIndent: 2,
		skillSize:    9,
		skillAfter:   5,
	}
}

func flowStyle() style {
	return style{
		region: layout.RegionFlow,
		col:    column{X: 10, W: PageWidth - 20},
		family: "Times",
		top:    10,

		bodySize:  10,
		bodyLineH: 5,
		bodyColor: colorBlack,
		smallSize: 10,

		titleSize:  22,
		titleLineH: 8,
		titleGap:   6,

		headerSize:   11,
		headerLineH:  6,
		headerGap:    5,
		headerGapTop: 5,
		headerAfter:  2,
		headerColor:  colorBlack,

		entrySize:    11,
		entryGap:     4,
		entryTitleW:  130,
		skillSize:    10,
		skillAfter:   5,
		contactAfter: 2,
	}
}

func (s style) font(fontStyle string, size float64) Font {
	return Font{Family: s.family, Style: fontStyle, Size: size}
}

func (s style) body() Font {
	return s.font("", s.bodySize)
}
