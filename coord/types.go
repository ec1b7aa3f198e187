package coord

import (
	"fmt"
	"math"
)

// NotFound is the Location of a Range that could not be resolved.
const NotFound = math.MaxInt

// NotFoundRange is returned for out-of-bounds or unresolvable queries.
var NotFoundRange = Range{Location: NotFound}

// Text is the view of a buffer that the mapper needs. Content reaches
// the mapper through Inserted.
type Text interface {
	Nc() int
}

// Position is a zero-based line and column.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Point is a location in view pixel space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

// maxCoord bounds point and cell coordinates so that cell arithmetic is
// exact in a float64 and cannot overflow an int.
const maxCoord = 1 << 52

// Valid reports whether both coordinates are finite and within ±2^52.
func (p Point) Valid() bool {
	return math.Abs(p.X) <= maxCoord && math.Abs(p.Y) <= maxCoord
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Range is a run of Length runes starting at Location. A zero Length
// is an insertion point.
type Range struct {
	Location int
	Length   int
}

// Found reports whether r is not the NotFound sentinel.
func (r Range) Found() bool { return r.Location != NotFound }

// End returns the index just past r.
func (r Range) End() int { return r.Location + r.Length }

// Contains reports whether q is inside r.
func (r Range) Contains(q int) bool {
	return r.Found() && q >= r.Location && q < r.End()
}

// Within reports whether r lies entirely inside [0, n).
func (r Range) Within(n int) bool {
	return r.Found() && r.Location >= 0 && r.Length >= 0 && r.Location <= n && r.Length <= n-r.Location
}

func (r Range) String() string {
	if !r.Found() {
		return fmt.Sprintf("{NotFound, %d}", r.Length)
	}
	return fmt.Sprintf("{%d, %d}", r.Location, r.Length)
}

// Rect is a frame in view pixel space.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.X, r.Y, r.Width, r.Height)
}
