package access

import (
	"fmt"
	"log/slog"

	"github.com/rjkroege/axtoy/coord"
	"github.com/rjkroege/axtoy/file"
	"github.com/rjkroege/axtoy/querylog"
)

// Computed is a Surface that owns its text and derives every answer
// from it on a fixed character grid. The insertion point always trails
// the text and nothing is ever selected.
type Computed struct {
	buf      *file.TextBuffer
	m        *coord.Mapper
	log      *querylog.Log
	notifier Notifier
	logger   *slog.Logger
	label    string
	mutating bool
}

var _ Surface = (*Computed)(nil)

// NewComputed returns an empty Computed surface.
func NewComputed(opts ...Option) *Computed {
	cfg := newConfig(opts)
	buf := file.NewTextBuffer("")
	m := coord.NewMapper(buf, cfg.grid)
	buf.AddObserver(m)
	return &Computed{
		buf:      buf,
		m:        m,
		log:      cfg.log,
		notifier: cfg.notifier,
		logger:   cfg.logger,
		label:    cfg.label,
	}
}

// Append adds s to the text. The query log is cleared before the text
// changes; the change notifications are posted once it has.
func (c *Computed) Append(s string) {
	if c.mutating {
		panic("internal error: Computed.Append called during an append")
	}
	c.mutating = true
	c.log.Clear()
	c.buf.Append(s)
	c.log.Note("** Append text “%s”. New value is:\n“%s”", s, c.buf.String())
	c.mutating = false

	c.logger.Debug("append", slog.String("backend", "computed"), slog.Int("nc", c.buf.Nc()))
	for _, n := range []Notification{ValueChanged, SelectedTextChanged, SelectedRowsChanged, SelectedColumnsChanged} {
		c.notifier.Post(c, n)
	}
}

// Text returns the current content.
func (c *Computed) Text() string { return c.buf.String() }

// Log returns the surface's query log.
func (c *Computed) Log() *querylog.Log { return c.log }

func (c *Computed) IsElement() bool {
	c.log.Printf("isElement -> true")
	return true
}

func (c *Computed) Label() (string, bool) {
	c.log.Printf("label -> %s", optional(c.label, true))
	return c.label, true
}

func (c *Computed) Role() (Role, bool) {
	c.log.Printf("role -> %s", optional(string(RoleTextArea), true))
	return RoleTextArea, true
}

func (c *Computed) RoleDescription() (string, bool) {
	d, ok := RoleDescription(RoleTextArea)
	c.log.Printf("roleDescription -> %s", optional(d, ok))
	return d, ok
}

func (c *Computed) Help() (string, bool) {
	c.log.Printf("help -> (nil)")
	return "", false
}

func (c *Computed) IsFocused() bool {
	c.log.Printf("isFocused -> true")
	return true
}

func (c *Computed) Value() (string, bool) {
	s := c.buf.String()
	c.log.Printf("value -> %s", optional(s, true))
	return s, true
}

func (c *Computed) NumberOfCharacters() int {
	n := c.buf.Nc()
	c.log.Printf("numberOfCharacters -> %d", n)
	return n
}

func (c *Computed) SelectedText() (string, bool) {
	c.log.Printf("selectedText -> “”")
	return "", true
}

func (c *Computed) SelectedTextRange() coord.Range {
	r := coord.Range{Location: c.buf.Nc(), Length: 0}
	c.log.Printf("selectedTextRange -> %v", r)
	return r
}

func (c *Computed) SelectedTextRanges() []coord.Range {
	r := c.SelectedTextRange()
	c.log.Printf("selectedTextRanges -> [%v]", r)
	return []coord.Range{r}
}

func (c *Computed) LineForIndex(q int) int {
	l := c.m.LineForIndex(q)
	c.log.Printf("lineForIndex:%d -> %d", q, l)
	return l
}

func (c *Computed) RangeForLine(n int) coord.Range {
	r := c.m.RangeForLine(n)
	c.log.Printf("rangeForLine:%d -> %v", n, r)
	return r
}

func (c *Computed) StringForRange(r coord.Range) (string, bool) {
	if !r.Within(c.buf.Nc()) {
		c.log.Printf("stringForRange:%v -> (nil)", r)
		return "", false
	}
	s := c.buf.Substring(r.Location, r.End())
	c.log.Printf("stringForRange:%v -> %s", r, optional(s, true))
	return s, true
}

func (c *Computed) AttributedStringForRange(r coord.Range) (AttributedString, bool) {
	s, ok := c.StringForRange(r)
	if !ok {
		return AttributedString{}, false
	}
	c.log.Printf("attributedStringForRange:%v -> %s", r, s)
	return AttributedString{String: s}, true
}

func (c *Computed) RangeForPoint(p coord.Point) coord.Range {
	r := c.m.RangeForPoint(p)
	c.log.Printf("rangeForPoint:%v -> %v", p, r)
	return r
}

func (c *Computed) RangeForIndex(q int) coord.Range {
	r := c.m.RangeForIndex(q)
	c.log.Printf("rangeForIndex:%d -> %v", q, r)
	return r
}

func (c *Computed) FrameForRange(r coord.Range) coord.Rect {
	f := c.m.FrameForRange(r)
	c.log.Printf("frameForRange:%v -> %v", r, f)
	return f
}

func (c *Computed) InsertionPointLine() int {
	l := c.m.InsertionPointLine()
	c.log.Printf("insertionPointLine -> %d", l)
	return l
}

func (c *Computed) VisibleCharacterRange() coord.Range {
	r := c.m.VisibleRange()
	c.log.Printf("visibleCharacterRange -> %v", r)
	return r
}

func (c *Computed) Document() (string, bool) {
	c.log.Printf("document -> (nil)")
	return "", false
}

func (c *Computed) SetContents(contents []any) { violate("setContents") }

func (c *Computed) SetValue(value any) { violate("setValue") }

func (c *Computed) SetSelectedTextRange(r coord.Range) { violate("setSelectedTextRange") }

func (c *Computed) String() string {
	return fmt.Sprintf("Computed{nc: %d, lines: %d}", c.buf.Nc(), c.m.LineCount())
}
