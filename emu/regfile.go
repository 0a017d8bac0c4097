// Package emu provides a functional LC-3 emulator.
package emu

// Flag is one of the three mutually exclusive condition-code values.
type Flag uint8

const (
	// FlagPositive is set after a register write whose value's sign bit
	// is clear and the value is nonzero.
	FlagPositive Flag = 1 << iota
	// FlagZero is set after a register write of zero.
	FlagZero
	// FlagNegative is set after a register write whose sign bit is set.
	FlagNegative
)

// RegFile is the LC-3 register file: eight general-purpose registers, the
// program counter, and the condition-code register.
type RegFile struct {
	// R holds the general-purpose registers R0-R7.
	R [8]uint16

	// PC is the program counter.
	PC uint16

	// Cond holds the condition flags, always exactly one of
	// FlagPositive, FlagZero, or FlagNegative.
	Cond Flag
}

// NewRegFile creates a register file in its power-on state: all registers
// zero and COND = ZRO.
func NewRegFile() *RegFile {
	return &RegFile{Cond: FlagZero}
}

// ReadReg reads a general-purpose register. Only the low 3 bits of reg are
// significant.
func (r *RegFile) ReadReg(reg uint8) uint16 {
	return r.R[reg&0x7]
}

// WriteReg stores value in the given register and re-derives the
// condition flags from it. Every instruction that the ISA specifies as
// flag-setting writes through this single method, so there is no separate
// place to forget to update COND.
func (r *RegFile) WriteReg(reg uint8, value uint16) {
	r.R[reg&0x7] = value
	r.setFlags(value)
}

// WriteRegRaw stores value in the given register without touching COND.
// Only the trap handler uses this: GETC and IN load a byte into R0, and
// the ISA leaves flags unchanged for TRAP.
func (r *RegFile) WriteRegRaw(reg uint8, value uint16) {
	r.R[reg&0x7] = value
}

func (r *RegFile) setFlags(value uint16) {
	switch {
	case value == 0:
		r.Cond = FlagZero
	case value>>15 == 1:
		r.Cond = FlagNegative
	default:
		r.Cond = FlagPositive
	}
}
