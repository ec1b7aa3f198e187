// Package traverse is a stand-in for a screen reader. It re-reads an
// element whenever the element says it changed.
package traverse

import (
	"io"
	"log/slog"

	"github.com/rjkroege/axtoy/access"
	"github.com/rjkroege/axtoy/coord"
)

// Line is what a poll learned about one line.
type Line struct {
	Range coord.Range
	Text  string
	Frame coord.Rect
}

// Snapshot is the result of one poll.
type Snapshot struct {
	Value         string
	Characters    int
	Selection     coord.Range
	InsertionLine int
	Visible       coord.Range
	Lines         []Line
}

// Option configures an Engine.
type Option func(*Engine)

// WithGrid sets the cell size used to probe point queries.
func WithGrid(g coord.Grid) Option {
	return func(e *Engine) {
		e.grid = g
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine polls elements in response to notifications.
type Engine struct {
	grid   coord.Grid
	logger *slog.Logger
	polls  int
	last   Snapshot
}

var _ access.Notifier = (*Engine)(nil)

// New returns an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		grid:   coord.DefaultGrid,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Post re-reads el. Every notification triggers a full poll; the
// element's query log is what keeps repeats out of the output.
func (e *Engine) Post(el access.Element, n access.Notification) {
	e.logger.Debug("notification", slog.String("name", string(n)))
	e.last = e.Poll(el)
}

// Polls returns how many polls have run.
func (e *Engine) Polls() int { return e.polls }

// Last returns the result of the most recent poll.
func (e *Engine) Last() Snapshot { return e.last }

// Poll asks el everything a reader needs to present it.
func (e *Engine) Poll(el access.Queries) Snapshot {
	e.polls++
	var s Snapshot

	el.IsElement()
	el.Role()
	el.RoleDescription()
	el.Label()
	el.Help()
	el.IsFocused()
	el.Document()

	s.Value, _ = el.Value()
	s.Characters = el.NumberOfCharacters()
	s.Selection = el.SelectedTextRange()
	el.SelectedTextRanges()
	el.SelectedText()
	s.InsertionLine = el.InsertionPointLine()
	s.Visible = el.VisibleCharacterRange()

	// A host that never reports NotFound still has at most one line
	// per character plus a trailing empty one.
	for n := 0; n <= s.Characters+1; n++ {
		r := el.RangeForLine(n)
		if !r.Found() {
			break
		}
		text, _ := el.StringForRange(r)
		el.AttributedStringForRange(r)
		s.Lines = append(s.Lines, Line{
			Range: r,
			Text:  text,
			Frame: el.FrameForRange(r),
		})
	}

	for q := 0; q <= s.Characters; q++ {
		el.LineForIndex(q)
		el.RangeForIndex(q)
	}

	for n, l := range s.Lines {
		for col := 0; col < l.Range.Length; col++ {
			el.RangeForPoint(coord.Pt(float64(col)*e.grid.CellWidth, float64(n)*e.grid.CellHeight))
		}
	}

	e.logger.Debug("poll",
		slog.Int("poll", e.polls),
		slog.Int("characters", s.Characters),
		slog.Int("lines", len(s.Lines)))
	return s
}
