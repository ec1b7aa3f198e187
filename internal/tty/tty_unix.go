//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build darwin dragonfly freebsd linux netbsd openbsd solaris

package tty

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// State is a saved terminal mode.
type State struct {
	f    *os.File
	mode unix.Termios
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	var mode unix.Termios
	return termios.Tcgetattr(f.Fd(), &mode) == nil
}

// Cbreak switches f to cbreak mode: input is delivered a byte at a time
// without echo. The returned State restores the previous mode.
func Cbreak(f *os.File) (*State, error) {
	var old unix.Termios
	if err := termios.Tcgetattr(f.Fd(), &old); err != nil {
		return nil, fmt.Errorf("tcgetattr %s: %w", f.Name(), err)
	}
	mode := old
	termios.Cfmakecbreak(&mode)
	if err := termios.Tcsetattr(f.Fd(), termios.TCSANOW, &mode); err != nil {
		return nil, fmt.Errorf("tcsetattr %s: %w", f.Name(), err)
	}
	return &State{f: f, mode: old}, nil
}

// Restore puts the terminal back into the saved mode.
func (s *State) Restore() error {
	if err := termios.Tcsetattr(s.f.Fd(), termios.TCSANOW, &s.mode); err != nil {
		return fmt.Errorf("tcsetattr %s: %w", s.f.Name(), err)
	}
	return nil
}
