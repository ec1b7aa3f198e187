package coord

import (
	"fmt"
	"math"
)

// Mapper answers coordinate and range queries about a Text. Its newline
// index must see every append made to the text: register the Mapper as a
// buffer observer before querying it.
type Mapper struct {
	text  Text
	lines *LineIndex
	grid  Grid
}

// NewMapper returns a Mapper for text on grid. A grid with a
// non-positive dimension is replaced by DefaultGrid.
func NewMapper(text Text, grid Grid) *Mapper {
	if grid.CellWidth <= 0 || grid.CellHeight <= 0 {
		grid = DefaultGrid
	}
	return &Mapper{
		text:  text,
		lines: NewLineIndex(),
		grid:  grid,
	}
}

// Inserted keeps the newline index in step with the text.
func (m *Mapper) Inserted(q0 int, r []rune) {
	m.lines.Inserted(q0, r)
}

// Grid returns the cell grid used for point queries.
func (m *Mapper) Grid() Grid { return m.grid }

func (m *Mapper) index() *LineIndex {
	if n := m.text.Nc(); m.lines.Len() != n {
		panic(fmt.Sprintf("internal error: Mapper line index covers %d runes, text has %d", m.lines.Len(), n))
	}
	return m.lines
}

// PositionFor returns the line and column of index q. It is the result
// of walking from 0 to q, bumping the column per rune and starting a new
// line after each newline other than one at offset 0. Indices past the
// end keep advancing the column; negative indices are at 0:0.
func (m *Mapper) PositionFor(q int) Position {
	if q <= 0 {
		return Position{}
	}
	li := m.index()
	pos := Position{Line: li.breaksBefore(q), Col: q}
	if p, ok := li.lastBreakBefore(q); ok {
		pos.Col = q - (p + 1)
	}
	return pos
}

// LineForIndex returns the line holding index q.
func (m *Mapper) LineForIndex(q int) int {
	return m.PositionFor(q).Line
}

// LineCount returns the number of addressable lines, one more than the
// number of newlines.
func (m *Mapper) LineCount() int {
	return m.index().Newlines() + 1
}

// RangeForLine returns the runes of line n including its terminating
// newline. The last line runs to the end of the text. Lines outside
// [0, LineCount()) resolve to NotFoundRange.
func (m *Mapper) RangeForLine(n int) Range {
	li := m.index()
	nn := li.Newlines()
	if n < 0 || n > nn {
		return NotFoundRange
	}
	start := 0
	if n > 0 {
		start = li.Newline(n-1) + 1
	}
	end := m.text.Nc()
	if n < nn {
		end = li.Newline(n) + 1
	}
	return Range{Location: start, Length: end - start}
}

// RangeForPoint returns the single-rune range under p. The column is
// not clamped to the line so a point right of a short line's end
// addresses runes beyond it.
func (m *Mapper) RangeForPoint(p Point) Range {
	col, line, ok := m.grid.Cell(p)
	if !ok {
		return NotFoundRange
	}
	r := m.RangeForLine(line)
	if !r.Found() {
		return r
	}
	return Range{Location: r.Location + col, Length: 1}
}

// RangeForIndex returns the range of the character at q. Composed
// characters are not recognised so this is always one rune.
func (m *Mapper) RangeForIndex(q int) Range {
	return Range{Location: q, Length: 1}
}

// FrameForRange returns the frame of r. The origin is the cell of the
// range's first rune; the extent is the furthest column and line reached
// by any rune in the range, measured from the view origin. Only runes in
// the text are visited: past the end positions stay on the last line and
// gain a column per index, so the range's last index covers the tail.
func (m *Mapper) FrameForRange(r Range) Rect {
	if !r.Found() {
		return Rect{}
	}
	c1 := m.PositionFor(r.Location)
	maxX, maxY := c1.Col, c1.Line
	if r.Length > 0 {
		last := math.MaxInt - 1
		if r.Location < 0 || r.Length-1 <= last-r.Location {
			last = r.Location + r.Length - 1
		}
		n := m.text.Nc()
		for q := max(r.Location, 0); q <= min(last, n-1); q++ {
			c := m.PositionFor(q)
			maxX = max(maxX, c.Col)
			maxY = max(maxY, c.Line)
		}
		if last >= n {
			c := m.PositionFor(last)
			maxX = max(maxX, c.Col)
			maxY = max(maxY, c.Line)
		}
	}
	o := m.grid.Origin(c1)
	return Rect{
		X:      o.X,
		Y:      o.Y,
		Width:  float64(maxX) * m.grid.CellWidth,
		Height: float64(maxY) * m.grid.CellHeight,
	}
}

// InsertionPointLine returns the line of the end of the text.
func (m *Mapper) InsertionPointLine() int {
	return m.LineForIndex(m.text.Nc())
}

// VisibleRange returns the whole text: every line is on the grid.
func (m *Mapper) VisibleRange() Range {
	return Range{Location: 0, Length: m.text.Nc()}
}
