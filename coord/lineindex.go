package coord

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// LineIndex records the offset of every newline in a buffer as a bit
// map. It is kept current by feeding it every append, in order, through
// Inserted; it implements file.BufferObserver.
type LineIndex struct {
	nl *bitset.BitSet
	n  int // runes seen so far
}

// NewLineIndex returns an empty LineIndex.
func NewLineIndex() *LineIndex {
	return &LineIndex{nl: bitset.New(0)}
}

// Inserted extends the index with runes r appended at q0. Appends must
// arrive in order.
func (li *LineIndex) Inserted(q0 int, r []rune) {
	if q0 != li.n {
		panic(fmt.Sprintf("internal error: LineIndex.Inserted at %d, index ends at %d", q0, li.n))
	}
	for i, c := range r {
		if c == '\n' {
			li.nl.Set(uint(q0 + i))
		}
	}
	li.n += len(r)
}

// Len returns the number of runes indexed.
func (li *LineIndex) Len() int { return li.n }

// Newlines returns the number of newlines in the buffer.
func (li *LineIndex) Newlines() int { return int(li.nl.Count()) }

// Newline returns the offset of the k-th newline. k must be in
// [0, Newlines()).
func (li *LineIndex) Newline(k int) int { return int(li.nl.Select(uint(k))) }

// breaksBefore returns the number of line breaks crossed when walking
// from 0 up to but excluding q. A newline at offset 0 is not a break.
func (li *LineIndex) breaksBefore(q int) int {
	if q <= 1 {
		return 0
	}
	n := int(li.nl.Rank(uint(q - 1)))
	if li.nl.Test(0) {
		n--
	}
	return n
}

// lastBreakBefore returns the offset of the last line break before q.
func (li *LineIndex) lastBreakBefore(q int) (int, bool) {
	if q <= 1 {
		return 0, false
	}
	n := li.nl.Rank(uint(q - 1))
	if n == 0 {
		return 0, false
	}
	p := int(li.nl.Select(n - 1))
	if p == 0 {
		return 0, false
	}
	return p, true
}
