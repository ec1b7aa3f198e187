//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)
// +build !darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package tty

import (
	"errors"
	"os"
)

// State is a saved terminal mode.
type State struct{}

// IsTerminal reports false: terminal modes are not supported here.
func IsTerminal(f *os.File) bool { return false }

// Cbreak is not supported on this platform.
func Cbreak(f *os.File) (*State, error) {
	return nil, errors.New("cbreak mode not supported")
}

func (s *State) Restore() error { return nil }
