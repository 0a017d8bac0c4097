// Package terminal adapts the host terminal to the LC-3's interactive
// input model: raw mode (no canonical buffering, no local echo) while the
// machine runs, with guaranteed restoration on every exit path.
package terminal

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"
)

// Session holds the terminal state saved on Enter, so Restore can put it
// back. When stdin is not a terminal, Session is a no-op: Enter
// skips raw-mode entry rather than erroring, so the emulator stays usable
// under test or when input is piped.
type Session struct {
	fd       int
	oldState *term.State
	sig      chan os.Signal
	done     chan struct{}
}

// Enter saves the current terminal attributes of stdin and switches it to
// raw mode, and installs a signal handler that restores those attributes
// before the process exits on interrupt. The caller must defer a call to
// Restore regardless of whether stdin turned out to be a terminal.
func Enter() (*Session, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return &Session{fd: fd}, nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	s := &Session{
		fd:       fd,
		oldState: oldState,
		sig:      make(chan os.Signal, 1),
		done:     make(chan struct{}),
	}
	signal.Notify(s.sig, os.Interrupt)

	go s.watchSignal()

	return s, nil
}

// watchSignal restores the terminal and exits with status -2 on the first
// interrupt, or exits quietly once Restore has closed done.
func (s *Session) watchSignal() {
	select {
	case <-s.sig:
		_ = s.Restore()
		fmt.Println()
		os.Exit(-2)
	case <-s.done:
	}
}

// Restore returns the terminal to the attributes captured by Enter, if it
// was put into raw mode. Calling Restore more than once is safe.
func (s *Session) Restore() error {
	if s.done != nil {
		select {
		case <-s.done:
		default:
			close(s.done)
			signal.Stop(s.sig)
		}
	}

	if s.oldState == nil {
		return nil
	}
	return term.Restore(s.fd, s.oldState)
}
