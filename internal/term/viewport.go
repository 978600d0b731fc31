package term

import "math"

// cellAspect is the height of a terminal cell divided by its width.
const cellAspect = 2.1

// viewport maps arena pixels onto terminal cells, keeping the circle round
// and centred. The bottom row is reserved for the status line.
type viewport struct {
	cols, rows       int
	scaleX, scaleY   float64 // arena pixels per column / row
	originX, originY float64 // arena pixel at the top-left of cell (0, 0)
}

func newViewport(width, height int, cx, cy, radius float64) viewport {
	cols := max(width, 1)
	rows := max(height-1, 1)

	// One pixel of padding so a particle resting on the wall stays on screen.
	span := 2 * (radius + 1)
	sx := span / float64(cols)
	if alt := span / (float64(rows) * cellAspect); alt > sx {
		sx = alt
	}
	sy := sx * cellAspect

	return viewport{
		cols:    cols,
		rows:    rows,
		scaleX:  sx,
		scaleY:  sy,
		originX: cx - float64(cols)*sx/2,
		originY: cy - float64(rows)*sy/2,
	}
}

// cell returns the cell covering arena point (x, y).
func (v viewport) cell(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor((x - v.originX) / v.scaleX))
	row = int(math.Floor((y - v.originY) / v.scaleY))
	ok = col >= 0 && col < v.cols && row >= 0 && row < v.rows
	return col, row, ok
}

func (v viewport) size() int { return v.cols * v.rows }

// needleGlyphs are arrows for the eight compass sectors, clockwise from east
// in screen orientation (y down).
var needleGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// needleGlyph returns the arrow closest to the direction (nx, ny), or a dot
// for a vector too short to point anywhere.
func needleGlyph(nx, ny float64) rune {
	if math.Hypot(nx, ny) < 0.05 {
		return '·'
	}
	ang := math.Atan2(ny, nx)
	sector := int(math.Round(ang/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return needleGlyphs[sector]
}

// densityGlyph picks a glyph for the number of particles in one cell.
func densityGlyph(n int) rune {
	switch {
	case n <= 0:
		return ' '
	case n == 1:
		return '.'
	case n == 2:
		return ':'
	case n <= 4:
		return 'o'
	case n <= 8:
		return 'O'
	}
	return '@'
}
