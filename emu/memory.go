package emu

import "fmt"

// MemSize is the number of addressable 16-bit words.
const MemSize = 1 << 16

// Memory-mapped I/O registers for the keyboard device.
const (
	// RegKBSR is the keyboard status register. Bit 15 is set when a
	// character is ready in RegKBDR.
	RegKBSR uint16 = 0xFE00
	// RegKBDR is the keyboard data register.
	RegKBDR uint16 = 0xFE02
)

// KeyboardSource supplies the next available input byte, if any, without
// blocking. Poll is invoked on every read of RegKBSR.
type KeyboardSource interface {
	Poll() (b byte, ready bool)
}

// Memory is the LC-3's flat 65,536-word address space, with the keyboard
// status/data registers mapped at RegKBSR/RegKBDR. A read of RegKBSR polls
// the configured KeyboardSource and updates both registers before the read
// completes, so polling is lazy: nothing runs until the guest program
// actually looks at KBSR.
type Memory struct {
	cells    [MemSize]uint16
	keyboard KeyboardSource
}

// NewMemory creates a zeroed memory with no keyboard source attached.
func NewMemory() *Memory {
	return &Memory{}
}

// SetKeyboardSource attaches the device polled on every RegKBSR read.
func (m *Memory) SetKeyboardSource(src KeyboardSource) {
	m.keyboard = src
}

// Read returns the word at addr, first servicing keyboard MMIO if addr is
// RegKBSR.
func (m *Memory) Read(addr uint16) uint16 {
	if addr == RegKBSR {
		m.pollKeyboard()
	}
	return m.cells[addr]
}

// Write stores value at addr.
func (m *Memory) Write(addr uint16, value uint16) {
	m.cells[addr] = value
}

func (m *Memory) pollKeyboard() {
	if m.keyboard == nil {
		return
	}
	if b, ready := m.keyboard.Poll(); ready {
		m.cells[RegKBSR] = 1 << 15
		m.cells[RegKBDR] = uint16(b)
	} else {
		m.cells[RegKBSR] = 0
	}
}

// LoadImage writes words into memory starting at origin. Per the LC-3
// object-file format, a short image is accepted as-is (the upper memory
// simply stays zeroed); an image that would run past the top of the
// address space is rejected.
func (m *Memory) LoadImage(origin uint16, words []uint16) error {
	if len(words) > MemSize-int(origin) {
		return fmt.Errorf("image at origin 0x%04X overruns memory (%d words, room for %d)",
			origin, len(words), MemSize-int(origin))
	}
	for i, w := range words {
		m.cells[int(origin)+i] = w
	}
	return nil
}
