package access

import (
	"io"
	"log/slog"

	"github.com/rjkroege/axtoy/coord"
	"github.com/rjkroege/axtoy/querylog"
)

type config struct {
	grid     coord.Grid
	log      *querylog.Log
	notifier Notifier
	logger   *slog.Logger
	label    string
}

// Option configures a Computed or Delegating surface.
type Option func(*config)

// WithGrid sets the character cell used by Computed for point and frame
// queries. Delegating ignores it: the host has its own layout.
func WithGrid(g coord.Grid) Option {
	return func(c *config) {
		c.grid = g
	}
}

// WithLog sets the query log. Each surface needs its own log.
func WithLog(l *querylog.Log) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithNotifier sets where change notifications are posted.
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLabel sets the label Computed reports.
func WithLabel(label string) Option {
	return func(c *config) {
		c.label = label
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		grid:     coord.DefaultGrid,
		notifier: nopNotifier{},
		label:    "shell",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.log == nil {
		c.log = querylog.New(io.Discard, querylog.WithLogger(c.logger))
	}
	return c
}

// optional formats an optional string answer for the log.
func optional(s string, ok bool) string {
	if !ok {
		return "(nil)"
	}
	return "“" + s + "”"
}
