package access

import (
	"log/slog"

	"github.com/rjkroege/axtoy/coord"
	"github.com/rjkroege/axtoy/querylog"
)

// Delegating is a Surface that answers every query by asking a
// RichTextHost and logging the answer. It never alters, caches or
// replaces what the host returns.
type Delegating struct {
	host     RichTextHost
	log      *querylog.Log
	notifier Notifier
	logger   *slog.Logger
	mutating bool
}

var _ Surface = (*Delegating)(nil)

// NewDelegating returns a Surface wrapping host.
func NewDelegating(host RichTextHost, opts ...Option) *Delegating {
	cfg := newConfig(opts)
	return &Delegating{
		host:     host,
		log:      cfg.log,
		notifier: cfg.notifier,
		logger:   cfg.logger,
	}
}

// Append extends the host's text through the host's own mutation path.
func (d *Delegating) Append(s string) {
	if d.mutating {
		panic("internal error: Delegating.Append called during an append")
	}
	d.mutating = true
	d.log.Clear()
	d.host.Append(s)
	v, ok := d.host.Value()
	d.log.Note("** Append text “%s”. New value is:\n%s", s, optional(v, ok))
	d.mutating = false

	d.logger.Debug("append", slog.String("backend", "delegating"), slog.Int("len", len(s)))
	d.notifier.Post(d, ValueChanged)
}

// Log returns the surface's query log.
func (d *Delegating) Log() *querylog.Log { return d.log }

func (d *Delegating) IsElement() bool {
	v := d.host.IsElement()
	d.log.Printf("isElement -> %v", v)
	return v
}

func (d *Delegating) Label() (string, bool) {
	v, ok := d.host.Label()
	d.log.Printf("label -> %s", optional(v, ok))
	return v, ok
}

func (d *Delegating) Role() (Role, bool) {
	v, ok := d.host.Role()
	d.log.Printf("role -> %s", optional(string(v), ok))
	return v, ok
}

func (d *Delegating) RoleDescription() (string, bool) {
	v, ok := d.host.RoleDescription()
	d.log.Printf("roleDescription -> %s", optional(v, ok))
	return v, ok
}

func (d *Delegating) Help() (string, bool) {
	v, ok := d.host.Help()
	d.log.Printf("help -> %s", optional(v, ok))
	return v, ok
}

func (d *Delegating) IsFocused() bool {
	v := d.host.IsFocused()
	d.log.Printf("isFocused -> %v", v)
	return v
}

func (d *Delegating) Value() (string, bool) {
	v, ok := d.host.Value()
	d.log.Printf("value -> %s", optional(v, ok))
	return v, ok
}

func (d *Delegating) NumberOfCharacters() int {
	v := d.host.NumberOfCharacters()
	d.log.Printf("numberOfCharacters -> %d", v)
	return v
}

func (d *Delegating) SelectedText() (string, bool) {
	v, ok := d.host.SelectedText()
	d.log.Printf("selectedText -> %s", optional(v, ok))
	return v, ok
}

func (d *Delegating) SelectedTextRange() coord.Range {
	v := d.host.SelectedTextRange()
	d.log.Printf("selectedTextRange -> %v", v)
	return v
}

func (d *Delegating) SelectedTextRanges() []coord.Range {
	v := d.host.SelectedTextRanges()
	if v == nil {
		d.log.Printf("selectedTextRanges -> (nil)")
	} else {
		d.log.Printf("selectedTextRanges -> %v", v)
	}
	return v
}

func (d *Delegating) LineForIndex(q int) int {
	v := d.host.LineForIndex(q)
	d.log.Printf("lineForIndex:%d -> %d", q, v)
	return v
}

func (d *Delegating) RangeForLine(n int) coord.Range {
	v := d.host.RangeForLine(n)
	d.log.Printf("rangeForLine:%d -> %v", n, v)
	return v
}

func (d *Delegating) StringForRange(r coord.Range) (string, bool) {
	v, ok := d.host.StringForRange(r)
	d.log.Printf("stringForRange:%v -> %s", r, optional(v, ok))
	return v, ok
}

func (d *Delegating) AttributedStringForRange(r coord.Range) (AttributedString, bool) {
	v, ok := d.host.AttributedStringForRange(r)
	if ok {
		d.log.Printf("attributedStringForRange:%v -> %s", r, v.String)
	} else {
		d.log.Printf("attributedStringForRange:%v -> (nil)", r)
	}
	return v, ok
}

func (d *Delegating) RangeForPoint(p coord.Point) coord.Range {
	v := d.host.RangeForPoint(p)
	d.log.Printf("rangeForPoint:%v -> %v", p, v)
	return v
}

func (d *Delegating) RangeForIndex(q int) coord.Range {
	v := d.host.RangeForIndex(q)
	d.log.Printf("rangeForIndex:%d -> %v", q, v)
	return v
}

func (d *Delegating) FrameForRange(r coord.Range) coord.Rect {
	v := d.host.FrameForRange(r)
	d.log.Printf("frameForRange:%v -> %v", r, v)
	return v
}

func (d *Delegating) InsertionPointLine() int {
	v := d.host.InsertionPointLine()
	d.log.Printf("insertionPointLine -> %d", v)
	return v
}

func (d *Delegating) VisibleCharacterRange() coord.Range {
	v := d.host.VisibleCharacterRange()
	d.log.Printf("visibleCharacterRange -> %v", v)
	return v
}

func (d *Delegating) Document() (string, bool) {
	v, ok := d.host.Document()
	d.log.Printf("document -> %s", optional(v, ok))
	return v, ok
}

func (d *Delegating) SetContents(contents []any) { violate("setContents") }

func (d *Delegating) SetValue(value any) { violate("setValue") }

func (d *Delegating) SetSelectedTextRange(r coord.Range) { violate("setSelectedTextRange") }
