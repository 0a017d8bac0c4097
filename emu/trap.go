package emu

import (
	"bufio"
	"fmt"
	"io"
)

// LC-3 trap vectors.
const (
	TrapGETC  uint8 = 0x20 // read a character, no echo, into R0
	TrapOUT   uint8 = 0x21 // write the character in R0
	TrapPUTS  uint8 = 0x22 // write a null-terminated string of words at R0
	TrapIN    uint8 = 0x23 // prompt, read and echo a character, into R0
	TrapPUTSP uint8 = 0x24 // write a null-terminated string of packed bytes at R0
	TrapHALT  uint8 = 0x25 // halt the machine
)

// TrapResult reports the effect of servicing one trap.
type TrapResult struct {
	// Halted is true if this trap should stop the main loop.
	Halted bool
}

// TrapHandler services the fixed table of LC-3 software traps. Separating
// it from the CPU core lets tests substitute in-memory buffers for stdin
// and stdout without touching the real terminal.
type TrapHandler interface {
	Handle(vector uint8) (TrapResult, error)
}

// DefaultTrapHandler is the standard LC-3 trap table, reading characters
// from an io.Reader and writing output to an io.Writer.
type DefaultTrapHandler struct {
	regFile *RegFile
	memory  *Memory
	stdin   *bufio.Reader
	stdout  io.Writer
}

// NewDefaultTrapHandler creates a trap handler wired to the given register
// file, memory, and I/O streams.
func NewDefaultTrapHandler(regFile *RegFile, memory *Memory, stdin io.Reader, stdout io.Writer) *DefaultTrapHandler {
	return &DefaultTrapHandler{
		regFile: regFile,
		memory:  memory,
		stdin:   bufio.NewReader(stdin),
		stdout:  stdout,
	}
}

// Handle dispatches to the trap routine named by vector.
func (h *DefaultTrapHandler) Handle(vector uint8) (TrapResult, error) {
	switch vector {
	case TrapGETC:
		return TrapResult{}, h.getc()
	case TrapOUT:
		return TrapResult{}, h.out()
	case TrapPUTS:
		return TrapResult{}, h.puts()
	case TrapIN:
		return TrapResult{}, h.in()
	case TrapPUTSP:
		return TrapResult{}, h.putsp()
	case TrapHALT:
		return TrapResult{Halted: true}, h.halt()
	default:
		// Unknown trap vectors are a no-op; R0 is left undefined.
		return TrapResult{}, nil
	}
}

func (h *DefaultTrapHandler) getc() error {
	b, err := h.stdin.ReadByte()
	if err != nil {
		h.regFile.WriteRegRaw(0, 0)
		return nil
	}
	h.regFile.WriteRegRaw(0, uint16(b))
	return nil
}

func (h *DefaultTrapHandler) out() error {
	return h.putByte(byte(h.regFile.ReadReg(0)))
}

func (h *DefaultTrapHandler) puts() error {
	addr := h.regFile.ReadReg(0)
	for {
		word := h.memory.Read(addr)
		if word == 0 {
			break
		}
		if err := h.putByte(byte(word)); err != nil {
			return err
		}
		addr++
	}
	return nil
}

func (h *DefaultTrapHandler) in() error {
	if _, err := fmt.Fprint(h.stdout, "Enter a character: "); err != nil {
		return err
	}
	b, err := h.stdin.ReadByte()
	if err != nil {
		h.regFile.WriteRegRaw(0, 0)
		return nil
	}
	h.regFile.WriteRegRaw(0, uint16(b))
	return h.putByte(b)
}

func (h *DefaultTrapHandler) putsp() error {
	addr := h.regFile.ReadReg(0)
	for {
		word := h.memory.Read(addr)
		if word == 0 {
			break
		}
		lo := byte(word & 0xFF)
		hi := byte(word >> 8)
		if err := h.putByte(lo); err != nil {
			return err
		}
		if hi != 0 {
			if err := h.putByte(hi); err != nil {
				return err
			}
		}
		addr++
	}
	return nil
}

// putByte writes b verbatim, unlike fmt's %c verb, which would UTF-8
// encode any byte >= 0x80 as a two-byte sequence instead of passing it
// through.
func (h *DefaultTrapHandler) putByte(b byte) error {
	_, err := h.stdout.Write([]byte{b})
	return err
}

func (h *DefaultTrapHandler) halt() error {
	_, err := fmt.Fprint(h.stdout, "HALT\n")
	return err
}
