package physics

import "math"

// Grid is a fixed-size uniform grid for broad-phase overlap queries. It covers
// the play field plus a margin on every side; anything further out is clamped
// into the border cells.
type Grid[R any] struct {
	origin Vec2
	cell   float64
	cols   int
	rows   int
	cells  [][]R
}

// NewGrid sizes a grid for the given bounds. cell should be about twice the
// largest collider radius.
func NewGrid[R any](b Bounds, margin, cell float64) *Grid[R] {
	cols := int(math.Ceil((b.Width+2*margin)/cell)) + 1
	rows := int(math.Ceil((b.Height+2*margin)/cell)) + 1
	return &Grid[R]{
		origin: Vec2{X: -margin, Y: -margin},
		cell:   cell,
		cols:   cols,
		rows:   rows,
		cells:  make([][]R, cols*rows),
	}
}

// Clear resets all cells, keeping allocated capacity.
func (g *Grid[R]) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *Grid[R]) span(p Vec2, radius float64) (minX, maxX, minY, maxY int) {
	clamp := func(v, hi int) int {
		if v < 0 {
			return 0
		}
		if v >= hi {
			return hi - 1
		}
		return v
	}
	minX = clamp(int(math.Floor((p.X-radius-g.origin.X)/g.cell)), g.cols)
	maxX = clamp(int(math.Floor((p.X+radius-g.origin.X)/g.cell)), g.cols)
	minY = clamp(int(math.Floor((p.Y-radius-g.origin.Y)/g.cell)), g.rows)
	maxY = clamp(int(math.Floor((p.Y+radius-g.origin.Y)/g.cell)), g.rows)
	return
}

// InsertCircle adds ref to every cell overlapping the circle's bounding box.
func (g *Grid[R]) InsertCircle(p Vec2, radius float64, ref R) {
	minX, maxX, minY, maxY := g.span(p, radius)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			idx := cy*g.cols + cx
			g.cells[idx] = append(g.cells[idx], ref)
		}
	}
}

// QueryBuf appends every ref in cells overlapping the box to buf. A ref
// spanning several cells can appear more than once.
func (g *Grid[R]) QueryBuf(p Vec2, radius float64, buf []R) []R {
	minX, maxX, minY, maxY := g.span(p, radius)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			buf = append(buf, g.cells[cy*g.cols+cx]...)
		}
	}
	return buf
}
