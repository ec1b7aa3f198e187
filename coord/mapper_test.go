package coord

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// runeText is a minimal Text for exercising the mapper without a buffer.
type runeText []rune

func (r runeText) Nc() int { return len(r) }

func newTestMapper(s string) *Mapper {
	t := runeText(s)
	m := NewMapper(t, DefaultGrid)
	m.Inserted(0, t)
	return m
}

// walk is the direct definition of PositionFor.
func walk(t runeText, q int) Position {
	var pos Position
	for i := 0; i < q; i++ {
		if i > 0 && i < len(t) && t[i] == '\n' {
			pos.Col = 0
			pos.Line++
		} else {
			pos.Col++
		}
	}
	return pos
}

var corpus = []string{
	"",
	"a",
	"\n",
	"\n\n",
	"\nabc\nde",
	"> Date",
	"> Date\n",
	"> Date\nMonday December 1\n> ",
	"one\ntwo\n\nfour\n",
	"本ウクラ\nx",
}

func TestPositionForMatchesWalk(t *testing.T) {
	for _, s := range corpus {
		m := newTestMapper(s)
		for q := -2; q <= len([]rune(s))+3; q++ {
			want := walk(runeText(s), q)
			if got := m.PositionFor(q); got != want {
				t.Errorf("%q: PositionFor(%d) = %v; want %v", s, q, got, want)
			}
		}
	}
}

func TestPositionFor(t *testing.T) {
	m := newTestMapper("> Date\nMonday December 1\n> ")
	for _, tc := range []struct {
		q    int
		want Position
	}{
		{0, Position{0, 0}},
		{5, Position{0, 5}},
		{6, Position{0, 6}}, // the newline itself
		{7, Position{1, 0}},
		{24, Position{1, 17}},
		{25, Position{2, 0}},
		{27, Position{2, 2}},
		{29, Position{2, 4}},
	} {
		if got := m.PositionFor(tc.q); got != tc.want {
			t.Errorf("PositionFor(%d) = %v; want %v", tc.q, got, tc.want)
		}
	}
}

func TestLeadingNewlineIsNotABreak(t *testing.T) {
	m := newTestMapper("\nab\nc")
	if got, want := m.PositionFor(2), (Position{0, 2}); got != want {
		t.Errorf("PositionFor(2) = %v; want %v", got, want)
	}
	if got, want := m.PositionFor(4), (Position{1, 0}); got != want {
		t.Errorf("PositionFor(4) = %v; want %v", got, want)
	}
	// The line partition still counts the leading newline.
	if got, want := m.RangeForLine(0), (Range{0, 1}); got != want {
		t.Errorf("RangeForLine(0) = %v; want %v", got, want)
	}
}

func TestRangeForLineTranscript(t *testing.T) {
	m := newTestMapper("> Date\nMonday December 1\n> ")

	var got []Range
	for n := -1; n <= 3; n++ {
		got = append(got, m.RangeForLine(n))
	}
	want := []Range{
		NotFoundRange,
		{0, 7},
		{7, 18},
		{25, 2},
		NotFoundRange,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RangeForLine mismatch (-want +got):\n%s", diff)
	}
	if got, want := m.LineCount(), 3; got != want {
		t.Errorf("LineCount() = %d; want %d", got, want)
	}
	if got, want := m.VisibleRange(), (Range{0, 27}); got != want {
		t.Errorf("VisibleRange() = %v; want %v", got, want)
	}
}

func TestRangeForLineTrailingEmptyLine(t *testing.T) {
	m := newTestMapper("> Date\n")
	if got, want := m.RangeForLine(1), (Range{7, 0}); got != want {
		t.Errorf("RangeForLine(1) = %v; want %v", got, want)
	}
	if got, want := m.InsertionPointLine(), 1; got != want {
		t.Errorf("InsertionPointLine() = %d; want %d", got, want)
	}
}

func TestLinesPartitionText(t *testing.T) {
	for _, s := range corpus {
		m := newTestMapper(s)
		n := len([]rune(s))
		next := 0
		for k := 0; k < m.LineCount(); k++ {
			r := m.RangeForLine(k)
			if !r.Found() {
				t.Fatalf("%q: RangeForLine(%d) not found", s, k)
			}
			if r.Location != next {
				t.Errorf("%q: line %d starts at %d; want %d", s, k, r.Location, next)
			}
			next = r.End()
		}
		if next != n {
			t.Errorf("%q: lines end at %d; want %d", s, next, n)
		}
	}
}

func TestLineForIndexIsMonotoneAndContained(t *testing.T) {
	for _, s := range corpus {
		if len(s) > 0 && s[0] == '\n' {
			// A leading newline is on line 0 by partition but not a break.
			continue
		}
		m := newTestMapper(s)
		n := len([]rune(s))
		prev := 0
		for q := 0; q <= n; q++ {
			l := m.LineForIndex(q)
			if l < prev {
				t.Errorf("%q: LineForIndex(%d) = %d decreased from %d", s, q, l, prev)
			}
			prev = l
			r := m.RangeForLine(l)
			if q < n && !r.Contains(q) {
				t.Errorf("%q: index %d on line %d not inside %v", s, q, l, r)
			}
			if q == n && r.End() != n {
				t.Errorf("%q: end index on line %d whose range %v ends early", s, l, r)
			}
		}
	}
}

func TestRangeForPoint(t *testing.T) {
	m := newTestMapper("> Date\nMonday December 1\n> ")
	for _, tc := range []struct {
		name string
		p    Point
		want Range
	}{
		{"origin", Pt(0, 0), Range{0, 1}},
		{"below half cell", Pt(4.9, 0), Range{0, 1}},
		{"half cell rounds up", Pt(5, 0), Range{1, 1}},
		{"above half cell", Pt(5.1, 0), Range{1, 1}},
		{"second line", Pt(20, 10), Range{9, 1}},
		{"half line rounds down", Pt(0, 4.9), Range{0, 1}},
		{"half line rounds up", Pt(0, 5), Range{7, 1}},
		{"past short line end", Pt(100, 20), Range{35, 1}},
		{"below last line", Pt(0, 30), NotFoundRange},
		{"above first line", Pt(0, -6), NotFoundRange},
		{"NaN column", Pt(math.NaN(), 0), NotFoundRange},
		{"NaN line", Pt(0, math.NaN()), NotFoundRange},
		{"infinite column", Pt(math.Inf(1), 0), NotFoundRange},
		{"negative infinite line", Pt(0, math.Inf(-1)), NotFoundRange},
		{"huge column", Pt(1e300, 0), NotFoundRange},
		{"huge line", Pt(0, -1e300), NotFoundRange},
	} {
		if got := m.RangeForPoint(tc.p); got != tc.want {
			t.Errorf("%s: RangeForPoint(%v) = %v; want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestRangeForPointCustomGrid(t *testing.T) {
	tx := runeText("ab\ncd")
	m := NewMapper(tx, Grid{CellWidth: 8, CellHeight: 16})
	m.Inserted(0, tx)
	if got, want := m.RangeForPoint(Pt(8, 16)), (Range{4, 1}); got != want {
		t.Errorf("RangeForPoint = %v; want %v", got, want)
	}
	if got, want := NewMapper(tx, Grid{}).Grid(), DefaultGrid; got != want {
		t.Errorf("zero grid replaced by %v; want %v", got, want)
	}
}

func TestRangeForIndex(t *testing.T) {
	m := newTestMapper("abc")
	for _, q := range []int{0, 2, 3, 10} {
		if got, want := m.RangeForIndex(q), (Range{q, 1}); got != want {
			t.Errorf("RangeForIndex(%d) = %v; want %v", q, got, want)
		}
	}
}

func TestFrameForRange(t *testing.T) {
	m := newTestMapper("> Date\nMonday December 1\n> ")
	for _, tc := range []struct {
		r    Range
		want Rect
	}{
		{Range{0, 0}, Rect{0, 0, 0, 0}},
		{Range{0, 7}, Rect{0, 0, 60, 0}},
		{Range{7, 18}, Rect{0, 10, 170, 10}},
		{Range{25, 2}, Rect{0, 20, 10, 20}},
		{Range{2, 10}, Rect{20, 0, 60, 10}},
		{Range{25, 5}, Rect{0, 20, 40, 20}},
		{Range{-(1 << 40), 1<<40 + 3}, Rect{0, 0, 20, 0}},
		{Range{5, math.MaxInt}, Rect{50, 0, float64(math.MaxInt-26) * 10, 20}},
		{NotFoundRange, Rect{}},
	} {
		if got := m.FrameForRange(tc.r); got != tc.want {
			t.Errorf("FrameForRange(%v) = %v; want %v", tc.r, got, tc.want)
		}
	}
}

func TestFrameForRangePastEndMatchesWalk(t *testing.T) {
	s := "> Date\nMonday December 1\n> "
	m := newTestMapper(s)
	for _, r := range []Range{{20, 10}, {26, 4}, {27, 3}, {30, 2}, {0, 40}} {
		c1 := walk(runeText(s), r.Location)
		maxX, maxY := c1.Col, c1.Line
		for q := r.Location; q < r.End(); q++ {
			c := walk(runeText(s), q)
			maxX, maxY = max(maxX, c.Col), max(maxY, c.Line)
		}
		want := Rect{float64(c1.Col) * 10, float64(c1.Line) * 10, float64(maxX) * 10, float64(maxY) * 10}
		if got := m.FrameForRange(r); got != want {
			t.Errorf("FrameForRange(%v) = %v; want %v", r, got, want)
		}
	}
}

func TestGridCell(t *testing.T) {
	for _, tc := range []struct {
		g         Grid
		p         Point
		col, line int
		ok        bool
	}{
		{DefaultGrid, Pt(15, 24), 2, 2, true},
		{DefaultGrid, Pt(-15, 0), -2, 0, true},
		{DefaultGrid, Pt(math.NaN(), 0), 0, 0, false},
		{DefaultGrid, Pt(0, math.Inf(1)), 0, 0, false},
		{Grid{CellWidth: 1e-300, CellHeight: 10}, Pt(1, 0), 0, 0, false},
	} {
		col, line, ok := tc.g.Cell(tc.p)
		if col != tc.col || line != tc.line || ok != tc.ok {
			t.Errorf("%v.Cell(%v) = %d, %d, %v; want %d, %d, %v", tc.g, tc.p, col, line, ok, tc.col, tc.line, tc.ok)
		}
	}
	if Pt(math.NaN(), 0).Valid() || Pt(0, math.Inf(-1)).Valid() || !Pt(-1e6, 1e6).Valid() {
		t.Errorf("Point.Valid misclassifies finite and non-finite points")
	}
}

func TestIncrementalIndexMatchesFreshIndex(t *testing.T) {
	var tx runeText
	m := NewMapper(&tx, DefaultGrid)
	for _, s := range []string{"> Date", "\n", "Monday December 1\n", "> "} {
		q0 := len(tx)
		tx = append(tx, []rune(s)...)
		m.Inserted(q0, tx[q0:])
	}
	fresh := newTestMapper(string(tx))
	for k := -1; k < 5; k++ {
		if got, want := m.RangeForLine(k), fresh.RangeForLine(k); got != want {
			t.Errorf("RangeForLine(%d) = %v; want %v", k, got, want)
		}
	}
}

func TestStaleIndexPanics(t *testing.T) {
	tx := runeText("abc")
	m := NewMapper(tx, DefaultGrid)
	defer func() {
		if recover() == nil {
			t.Errorf("querying an unfed Mapper did not panic")
		}
	}()
	m.RangeForLine(0)
}
