package tui

// Minimum terminal size for the panel layout.
const (
	minWidth  = 60
	minHeight = 16
)

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed panel geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Log, Sets      Rect
	TooSmall       bool // true when terminal is below minWidth×minHeight
}

// Calculate computes the panel layout for a terminal of the given dimensions.
//
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Sets: right column, 35% of width clamped to [24, 44]
//   - Log: the remaining width on the left
func Calculate(width, height int) Layout {
	if width < minWidth || height < minHeight {
		return Layout{TooSmall: true}
	}

	bodyH := height - 2

	setsW := width * 35 / 100
	if setsW < 24 {
		setsW = 24
	}
	if setsW > 44 {
		setsW = 44
	}
	logW := width - setsW

	return Layout{
		Header: Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer: Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		Log:    Rect{X: 0, Y: 1, Width: logW, Height: bodyH},
		Sets:   Rect{X: logW, Y: 1, Width: setsW, Height: bodyH},
	}
}

// innerDims returns the content dimensions for a panel rect accounting for
// the 1-character border on each side.
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
