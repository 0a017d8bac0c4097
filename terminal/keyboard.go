package terminal

import "io"

// StdinKeyboard polls a background reader for the next available byte
// without blocking, so it can back the emulator's KBSR/KBDR memory-mapped
// registers: KBSR is read far more often than a key is actually pressed,
// and that read must never block.
//
// It also implements io.Reader, blocking until a byte arrives. GETC and IN
// must pull from this same channel rather than reading the underlying
// source directly: a single goroutine owns the source, so a byte is
// delivered to whichever side (KBSR poll or a blocking trap read) asks for
// it first, and never to both.
type StdinKeyboard struct {
	ch chan byte
}

// NewStdinKeyboard starts a goroutine reading single bytes from r into an
// internal buffer and returns a poller over it. The goroutine exits once r
// returns an error (including io.EOF on piped input) and closes the buffer,
// after which Read reports io.EOF.
func NewStdinKeyboard(r io.Reader) *StdinKeyboard {
	k := &StdinKeyboard{ch: make(chan byte, 1)}

	go func() {
		defer close(k.ch)
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				k.ch <- buf[0]
			}
			if err != nil {
				return
			}
		}
	}()

	return k
}

// Poll returns the next buffered byte, if one has arrived since the last
// call, without blocking.
func (k *StdinKeyboard) Poll() (byte, bool) {
	select {
	case b, ok := <-k.ch:
		if !ok {
			return 0, false
		}
		return b, true
	default:
		return 0, false
	}
}

// Read implements io.Reader, blocking until a byte is available. Once the
// source has ended and every buffered byte is consumed, it returns io.EOF.
// It draws from the same channel as Poll, so GETC/IN and KBSR polling never
// observe the same keystroke twice.
func (k *StdinKeyboard) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, ok := <-k.ch
	if !ok {
		return 0, io.EOF
	}
	p[0] = b
	return 1, nil
}
