// Package tty puts the controlling terminal into cbreak mode so a single
// key press can act as a trigger, and rings the terminal bell.
package tty

import "io"

// Bell rings the terminal bell by writing BEL to W.
type Bell struct {
	W io.Writer
}

func (b Bell) Beep() {
	b.W.Write([]byte{'\a'})
}
