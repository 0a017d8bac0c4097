// Package insts provides LC-3 instruction definitions and decoding.
//
// This package turns a raw 16-bit instruction word into a structured
// Instruction value: the opcode occupies the top four bits, and the
// remaining twelve bits are interpreted according to that opcode's
// fixed field layout (register numbers, signed offsets, immediates,
// or a trap vector).
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x1025) // ADD R0, R0, #5
//	fmt.Printf("Op: %v, DR: %d, Imm5: %d\n", inst.Op, inst.DR, inst.Imm5)
package insts
