// Package coord converts between the three ways a traversal engine
// addresses text: a linear rune index, a (line, column) position and a
// point on a fixed pixel grid. It also resolves line-, point- and
// index-based ranges over a buffer that only grows at its end.
//
// A newline belongs to the line it terminates. A buffer with n newlines
// has n+1 lines, the last of which may be empty.
package coord
