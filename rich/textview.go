// Package rich is a plain text view with its own layout engine: text is
// broken into boxes and laid out on visual lines that wrap at the view's
// width. It answers the accessibility queries of access.RichTextHost
// from that layout.
package rich

import (
	"image"

	"github.com/rjkroege/axtoy/access"
	"github.com/rjkroege/axtoy/coord"
	"github.com/rjkroege/axtoy/draw"
)

// Option configures a TextView.
type Option func(*TextView)

// WithFont sets the font text is measured with.
func WithFont(f draw.Font) Option {
	return func(v *TextView) {
		v.font = f
	}
}

// WithRect sets the view rectangle. A zero width disables wrapping and a
// zero height makes every line visible.
func WithRect(r image.Rectangle) Option {
	return func(v *TextView) {
		v.rect = r
	}
}

// WithLabel sets the accessibility label.
func WithLabel(label string) Option {
	return func(v *TextView) {
		v.label = label
		v.haslabel = true
	}
}

// WithFocus sets whether the view reports keyboard focus.
func WithFocus(focused bool) Option {
	return func(v *TextView) {
		v.focused = focused
	}
}

// WithMaxtab sets the tab stop interval in widths of '0'.
func WithMaxtab(chars int) Option {
	return func(v *TextView) {
		v.maxtabchars = chars
	}
}

// TextView is a RichTextHost. Its selection is its own: appending text
// leaves it where it was.
type TextView struct {
	text        []rune
	font        draw.Font
	rect        image.Rectangle
	maxtabchars int
	label       string
	haslabel    bool
	focused     bool
	sel         coord.Range

	lines []Line // nil when the layout is stale
}

var _ access.RichTextHost = (*TextView)(nil)

// NewTextView returns an empty TextView.
func NewTextView(opts ...Option) *TextView {
	v := &TextView{
		font:        draw.NewMonospace(10, 10),
		maxtabchars: 8,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Append adds s to the end of the text.
func (v *TextView) Append(s string) {
	v.text = append(v.text, []rune(s)...)
	v.lines = nil
}

// SetSelection moves the selection, clipped to the text.
func (v *TextView) SetSelection(r coord.Range) {
	n := len(v.text)
	q0 := min(max(r.Location, 0), n)
	q1 := min(max(r.Location+max(r.Length, 0), q0), n)
	v.sel = coord.Range{Location: q0, Length: q1 - q0}
}

// Lines returns the current layout.
func (v *TextView) Lines() []Line {
	if v.lines == nil {
		maxtab := v.maxtabchars * v.font.StringWidth("0")
		v.lines = layout(contentToBoxes(string(v.text)), v.font, v.rect.Dx(), maxtab)
	}
	return v.lines
}

// lineOf returns the index of the line holding rune q. Runes at or past
// the end are on the last line.
func (v *TextView) lineOf(q int) int {
	lines := v.Lines()
	if q <= 0 {
		return 0
	}
	for i, l := range lines {
		if q >= l.Start && q < l.End {
			return i
		}
	}
	return len(lines) - 1
}

// lineX returns the offset of rune q from the left edge of line l.
func (v *TextView) lineX(l Line, q int) int {
	x := 0
	for _, pb := range l.Boxes {
		if q < pb.Start+pb.Box.Runes() {
			if pb.Box.Nrune < 0 || q <= pb.Start {
				return pb.X
			}
			return pb.X + widthOfRunes(v.font, pb.Box.Text, q-pb.Start)
		}
		x = pb.X + pb.Box.Wid
	}
	return x
}

// Ptofchar returns the top-left point of rune p in view coordinates.
func (v *TextView) Ptofchar(p int) image.Point {
	if p <= 0 {
		return v.rect.Min
	}
	l := v.Lines()[v.lineOf(p)]
	return v.rect.Min.Add(image.Pt(v.lineX(l, p), l.Y))
}

// Charofpt returns the rune under pt. Points left of or above the view
// are moved onto it; points right of a line's end map to the end of
// that line.
func (v *TextView) Charofpt(pt image.Point) int {
	lines := v.Lines()
	rel := pt.Sub(v.rect.Min)
	rel.X = max(rel.X, 0)
	rel.Y = max(rel.Y, 0)

	target := lines[0]
	for _, l := range lines {
		if rel.Y >= l.Y {
			target = l
		}
	}

	for _, pb := range target.Boxes {
		end := pb.X + pb.Box.Wid
		switch {
		case pb.Box.IsNewline():
			if rel.X >= pb.X {
				return pb.Start
			}
		case rel.X >= end:
			continue
		case pb.Box.IsTab():
			return pb.Start
		default:
			return pb.Start + runeAtX(v.font, pb.Box.Text, rel.X-pb.X)
		}
	}
	return target.End
}

func (v *TextView) IsElement() bool { return true }

func (v *TextView) Label() (string, bool) { return v.label, v.haslabel }

func (v *TextView) Role() (access.Role, bool) { return access.RoleTextArea, true }

func (v *TextView) RoleDescription() (string, bool) {
	return access.RoleDescription(access.RoleTextArea)
}

func (v *TextView) Help() (string, bool) { return "", false }

func (v *TextView) IsFocused() bool { return v.focused }

func (v *TextView) Value() (string, bool) { return string(v.text), true }

func (v *TextView) NumberOfCharacters() int { return len(v.text) }

func (v *TextView) SelectedText() (string, bool) {
	return string(v.text[v.sel.Location:v.sel.End()]), true
}

func (v *TextView) SelectedTextRange() coord.Range { return v.sel }

func (v *TextView) SelectedTextRanges() []coord.Range { return []coord.Range{v.sel} }

func (v *TextView) LineForIndex(q int) int { return v.lineOf(q) }

func (v *TextView) RangeForLine(n int) coord.Range {
	lines := v.Lines()
	if n < 0 || n >= len(lines) {
		return coord.NotFoundRange
	}
	return coord.Range{Location: lines[n].Start, Length: lines[n].End - lines[n].Start}
}

func (v *TextView) StringForRange(r coord.Range) (string, bool) {
	if !r.Within(len(v.text)) {
		return "", false
	}
	return string(v.text[r.Location:r.End()]), true
}

func (v *TextView) AttributedStringForRange(r coord.Range) (access.AttributedString, bool) {
	s, ok := v.StringForRange(r)
	if !ok {
		return access.AttributedString{}, false
	}
	return access.AttributedString{
		String:     s,
		Attributes: map[string]string{"font": v.font.Name()},
	}, true
}

func (v *TextView) RangeForPoint(p coord.Point) coord.Range {
	if !p.Valid() {
		return coord.NotFoundRange
	}
	q := v.Charofpt(image.Pt(int(p.X), int(p.Y)))
	if q >= len(v.text) {
		return coord.Range{Location: len(v.text)}
	}
	return coord.Range{Location: q, Length: 1}
}

func (v *TextView) RangeForIndex(q int) coord.Range {
	switch {
	case q < 0 || q > len(v.text):
		return coord.NotFoundRange
	case q == len(v.text):
		return coord.Range{Location: q}
	}
	return coord.Range{Location: q, Length: 1}
}

// FrameForRange returns the bounding box of the runes in r in view
// coordinates. An empty range is a zero-width frame at its location.
func (v *TextView) FrameForRange(r coord.Range) coord.Rect {
	if !r.Within(len(v.text)) {
		return coord.Rect{}
	}
	lines := v.Lines()
	first, last := v.lineOf(r.Location), v.lineOf(r.End())
	if r.Length > 0 {
		last = v.lineOf(r.End() - 1)
	}

	var bounds image.Rectangle
	for i := first; i <= last; i++ {
		l := lines[i]
		q0 := max(r.Location, l.Start)
		q1 := min(r.End(), l.End)
		lr := image.Rect(v.lineX(l, q0), l.Y, v.lineX(l, q1), l.Y+l.Height)
		if i == first {
			bounds = lr
		} else {
			bounds = bounds.Union(lr)
		}
	}
	bounds = bounds.Add(v.rect.Min)
	return coord.Rect{
		X:      float64(bounds.Min.X),
		Y:      float64(bounds.Min.Y),
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
	}
}

func (v *TextView) InsertionPointLine() int { return v.lineOf(v.sel.Location) }

// VisibleCharacterRange returns the runes on the lines that fit in the
// view's height.
func (v *TextView) VisibleCharacterRange() coord.Range {
	lines := v.Lines()
	h := v.rect.Dy()
	if h <= 0 {
		return coord.Range{Location: 0, Length: len(v.text)}
	}
	end := 0
	for _, l := range lines {
		if l.Y+l.Height > h {
			break
		}
		end = l.End
	}
	return coord.Range{Location: 0, Length: end}
}

func (v *TextView) Document() (string, bool) { return "", false }
