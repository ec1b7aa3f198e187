package file

import "unicode/utf8"

// RuneArray is a growable array of runes. It has no way to shrink.
type RuneArray []rune

// Append adds r to the end of the array.
func (b *RuneArray) Append(r []rune) {
	*b = append(*b, r...)
}

func (b *RuneArray) ReadC(q int) rune { return (*b)[q] }

// String returns a string representation of buffer. See fmt.Stringer interface.
func (b *RuneArray) String() string { return string(*b) }

// Nc returns the number of characters in the RuneArray.
func (b *RuneArray) Nc() int {
	return len(*b)
}

// Nbyte returns the number of bytes needed to store the contents
// of the buffer in UTF-8.
func (b *RuneArray) Nbyte() int {
	bc := 0
	for _, r := range *b {
		bc += utf8.RuneLen(r)
	}
	return bc
}

// View returns the runes in [q0, q1). q1 is clipped to the end of the
// array. The result aliases the array and must not be modified.
func (b *RuneArray) View(q0, q1 int) []rune {
	if q1 > len(*b) {
		q1 = len(*b)
	}
	return (*b)[q0:q1]
}

// Substring returns the text in [q0, q1) as a string.
func (b *RuneArray) Substring(q0, q1 int) string {
	return string(b.View(q0, q1))
}
