// Package querylog records the queries a traversal engine makes against
// an accessibility surface. Identical query lines are written once per
// mutation epoch: the owner calls Clear at the start of every mutation
// so that re-asked questions about new content show up again.
package querylog

import (
	"fmt"
	"io"
	"log/slog"
)

// Log is a deduplicating query log. It is not safe for concurrent use;
// the surface it serves is driven from a single goroutine.
type Log struct {
	w          io.Writer
	logger     *slog.Logger
	seen       map[string]struct{}
	entries    []string
	suppressed int
	epoch      int
}

// Option configures a Log.
type Option func(*Log)

// WithLogger sets the logger that receives epoch bookkeeping at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) {
		l.logger = logger
	}
}

// New returns a Log that writes new entries to w.
func New(w io.Writer, opts ...Option) *Log {
	l := &Log{
		w:      w,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		seen:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record adds key to the set of seen queries. It returns true when key
// was not already present, meaning it should be emitted.
func (l *Log) Record(key string) bool {
	if _, ok := l.seen[key]; ok {
		l.suppressed++
		return false
	}
	l.seen[key] = struct{}{}
	l.entries = append(l.entries, key)
	return true
}

// Printf formats a query line and writes it if it has not been seen
// since the last Clear.
func (l *Log) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !l.Record(msg) {
		return
	}
	fmt.Fprintln(l.w, msg)
}

// Note writes a line unconditionally. Notes are not queries and do not
// take part in deduplication.
func (l *Log) Note(format string, args ...any) {
	fmt.Fprintf(l.w, format, args...)
	fmt.Fprintln(l.w)
}

// Clear forgets every seen query and starts a new epoch.
func (l *Log) Clear() {
	l.logger.Debug("query log cleared",
		slog.Int("epoch", l.epoch),
		slog.Int("entries", len(l.entries)),
		slog.Int("suppressed", l.suppressed))
	clear(l.seen)
	l.entries = l.entries[:0]
	l.suppressed = 0
	l.epoch++
}

// Entries returns the distinct queries of the current epoch in the order
// first seen.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Suppressed returns how many duplicates were dropped this epoch.
func (l *Log) Suppressed() int { return l.suppressed }

// Epoch returns the number of times the log has been cleared.
func (l *Log) Epoch() int { return l.epoch }
