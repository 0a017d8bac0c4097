package emu

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/lc3sim/insts"
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Halted is true if HALT was serviced and the main loop should stop.
	Halted bool

	// Err is set if a fatal condition (illegal opcode, instruction limit)
	// occurred. It never represents an in-guest fault; the ISA itself has
	// no trap-on-error semantics.
	Err error
}

// Emulator executes LC-3 instructions functionally: one fetch-decode-
// execute step at a time, with no timing or pipeline model.
type Emulator struct {
	regFile     *RegFile
	memory      *Memory
	decoder     *insts.Decoder
	trapHandler TrapHandler

	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithStdin sets a custom stdin reader, used by GETC and IN.
func WithStdin(r io.Reader) EmulatorOption {
	return func(e *Emulator) { e.stdin = r }
}

// WithStdout sets a custom stdout writer.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) { e.stdout = w }
}

// WithStderr sets a custom stderr writer, used for diagnostics.
func WithStderr(w io.Writer) EmulatorOption {
	return func(e *Emulator) { e.stderr = w }
}

// WithTrapHandler sets a custom trap handler, overriding DefaultTrapHandler.
func WithTrapHandler(handler TrapHandler) EmulatorOption {
	return func(e *Emulator) { e.trapHandler = handler }
}

// WithKeyboardSource attaches a KeyboardSource polled on every KBSR read.
func WithKeyboardSource(src KeyboardSource) EmulatorOption {
	return func(e *Emulator) { e.memory.SetKeyboardSource(src) }
}

// WithMaxInstructions sets a diagnostic cap on the number of instructions
// Step will execute before returning an error. A value of 0 (the default)
// means no limit; this is not part of the ISA and exists only to bound
// runaway programs under test.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) { e.maxInstructions = max }
}

// NewEmulator creates a new LC-3 emulator in its power-on state: all
// registers zero, COND = ZRO, memory zeroed, PC = 0.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	regFile := NewRegFile()
	memory := NewMemory()

	e := &Emulator{
		regFile: regFile,
		memory:  memory,
		decoder: insts.NewDecoder(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	// Apply options first: they may set stdin/stdout or attach a keyboard
	// source to e.memory before the execution units and trap handler are
	// constructed from it.
	for _, opt := range opts {
		opt(e)
	}

	e.alu = NewALU(regFile)
	e.lsu = NewLoadStoreUnit(regFile, memory)
	e.branchUnit = NewBranchUnit(regFile)

	if e.trapHandler == nil {
		e.trapHandler = NewDefaultTrapHandler(regFile, memory, e.stdin, e.stdout)
	}

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed so far.
// This is a diagnostic only; it never influences execution.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// LoadImage loads an image's words into memory at origin. Multiple images
// may be loaded additively at distinct (or overlapping) origins; a later
// image's words overwrite an earlier image's words where they coincide.
func (e *Emulator) LoadImage(origin uint16, words []uint16) error {
	return e.memory.LoadImage(origin, words)
}

// SetPC sets the program counter. The conventional LC-3 entry point is
// 0x3000.
func (e *Emulator) SetPC(pc uint16) {
	e.regFile.PC = pc
}

// Step executes a single instruction: fetch, increment PC, decode,
// execute.
func (e *Emulator) Step() StepResult {
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: fmt.Errorf("max instructions reached")}
	}

	word := e.memory.Read(e.regFile.PC)
	e.regFile.PC++

	inst := e.decoder.Decode(word)
	result := e.execute(inst)

	e.instructionCount++

	return result
}

// Run executes instructions until HALT or a fatal error, returning the
// process exit code: 0 on HALT, 1 if Step reported an error.
func (e *Emulator) Run() int {
	for {
		result := e.Step()
		if result.Halted {
			return 0
		}
		if result.Err != nil {
			_, _ = fmt.Fprintf(e.stderr, "lc3: %v\n", result.Err)
			return 1
		}
	}
}

// execute dispatches a decoded instruction to the owning execution unit.
func (e *Emulator) execute(inst *insts.Instruction) StepResult {
	switch inst.Op {
	case insts.OpBR:
		e.branchUnit.BR(inst.N, inst.Z, inst.P, inst.PCOffset9)

	case insts.OpADD:
		if inst.UseImm {
			e.alu.ADDImm(inst.DR, inst.SR1, inst.Imm5)
		} else {
			e.alu.ADD(inst.DR, inst.SR1, inst.SR2)
		}

	case insts.OpLD:
		e.lsu.LD(inst.DR, inst.PCOffset9)

	case insts.OpST:
		e.lsu.ST(inst.DR, inst.PCOffset9)

	case insts.OpJSR:
		if inst.Long {
			e.branchUnit.JSR(inst.PCOffset11)
		} else {
			e.branchUnit.JSRR(inst.BaseR)
		}

	case insts.OpAND:
		if inst.UseImm {
			e.alu.ANDImm(inst.DR, inst.SR1, inst.Imm5)
		} else {
			e.alu.AND(inst.DR, inst.SR1, inst.SR2)
		}

	case insts.OpLDR:
		e.lsu.LDR(inst.DR, inst.BaseR, inst.Offset6)

	case insts.OpSTR:
		e.lsu.STR(inst.DR, inst.BaseR, inst.Offset6)

	case insts.OpNOT:
		e.alu.NOT(inst.DR, inst.SR1)

	case insts.OpLDI:
		e.lsu.LDI(inst.DR, inst.PCOffset9)

	case insts.OpSTI:
		e.lsu.STI(inst.DR, inst.PCOffset9)

	case insts.OpJMP:
		e.branchUnit.JMP(inst.BaseR)

	case insts.OpLEA:
		e.lsu.LEA(inst.DR, inst.PCOffset9)

	case insts.OpTRAP:
		return e.executeTrap(inst.TrapVect)

	case insts.OpRTI, insts.OpRES:
		return StepResult{
			Err: fmt.Errorf("illegal opcode %s (word 0x%04X) at PC=0x%04X", inst.Op, inst.Raw, e.regFile.PC-1),
		}
	}

	return StepResult{}
}

// executeTrap invokes the trap handler for the given vector. R7 is not
// saved on trap entry: the trap table is a fixed set of built-in service
// routines rather than guest-visible subroutines, so there is nothing for
// a guest RET to return to.
func (e *Emulator) executeTrap(vector uint8) StepResult {
	result, err := e.trapHandler.Handle(vector)
	if err != nil {
		return StepResult{Err: err}
	}
	return StepResult{Halted: result.Halted}
}
