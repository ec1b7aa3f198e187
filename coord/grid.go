package coord

import "math"

// Grid is the fixed pixel cell every character occupies.
type Grid struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultGrid is a 10x10 cell.
var DefaultGrid = Grid{CellWidth: 10, CellHeight: 10}

// Cell returns the column and line nearest to p. Halves round away
// from zero. ok is false when p is not finite or its cell lies beyond
// ±maxCoord.
func (g Grid) Cell(p Point) (col, line int, ok bool) {
	x := math.Round(p.X / g.CellWidth)
	y := math.Round(p.Y / g.CellHeight)
	if !(math.Abs(x) <= maxCoord && math.Abs(y) <= maxCoord) {
		return 0, 0, false
	}
	return int(x), int(y), true
}

// Origin returns the top-left corner of the cell at pos.
func (g Grid) Origin(pos Position) Point {
	return Point{float64(pos.Col) * g.CellWidth, float64(pos.Line) * g.CellHeight}
}
