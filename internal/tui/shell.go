// ABOUTME: Native-shell capability interface for the tracker view.
// ABOUTME: Haptics and exit requests degrade to no-ops when unavailable.
package tui

import (
	"io"
	"os"
)

// NativeShell abstracts the host platform niceties the view uses. It is
// selected once at startup and injected; callers never probe the
// environment ad hoc.
type NativeShell interface {
	// Pulse triggers a short haptic-style feedback.
	Pulse()
	// RequestExit asks the host to leave the app (outside the view's own
	// quit path).
	RequestExit()
}

// TerminalShell maps shell capabilities onto a plain terminal: the haptic
// pulse becomes the terminal bell.
type TerminalShell struct {
	Out io.Writer
}

func NewTerminalShell() *TerminalShell {
	return &TerminalShell{Out: os.Stderr}
}

func (s *TerminalShell) Pulse() {
	io.WriteString(s.Out, "\a")
}

func (s *TerminalShell) RequestExit() {
	os.Exit(0)
}

// NullShell is the no-op implementation used where no shell integration
// exists (tests, non-interactive targets).
type NullShell struct{}

func (NullShell) Pulse()       {}
func (NullShell) RequestExit() {}
