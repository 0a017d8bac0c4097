package emu

// LoadStoreUnit implements the LC-3 memory-access instructions: LD, LDI,
// LDR, LEA, ST, STI, and STR.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{regFile: regFile, memory: memory}
}

// LD loads DR from mem[PC + SignExtend(pcOffset9, 9)].
func (lsu *LoadStoreUnit) LD(dr uint8, pcOffset9 uint16) {
	addr := lsu.regFile.PC + SignExtend(pcOffset9, 9)
	lsu.regFile.WriteReg(dr, lsu.memory.Read(addr))
}

// LDI loads DR from mem[mem[PC + SignExtend(pcOffset9, 9)]].
func (lsu *LoadStoreUnit) LDI(dr uint8, pcOffset9 uint16) {
	addr := lsu.regFile.PC + SignExtend(pcOffset9, 9)
	indirect := lsu.memory.Read(addr)
	lsu.regFile.WriteReg(dr, lsu.memory.Read(indirect))
}

// LDR loads DR from mem[baseR + SignExtend(offset6, 6)].
func (lsu *LoadStoreUnit) LDR(dr, baseR uint8, offset6 uint16) {
	addr := lsu.regFile.ReadReg(baseR) + SignExtend(offset6, 6)
	lsu.regFile.WriteReg(dr, lsu.memory.Read(addr))
}

// LEA loads DR with the computed address PC + SignExtend(pcOffset9, 9)
// itself, rather than the word stored there. LEA still sets the condition
// flags, since it writes through RegFile.WriteReg like every other
// DR-producing instruction.
func (lsu *LoadStoreUnit) LEA(dr uint8, pcOffset9 uint16) {
	lsu.regFile.WriteReg(dr, lsu.regFile.PC+SignExtend(pcOffset9, 9))
}

// ST stores SR into mem[PC + SignExtend(pcOffset9, 9)].
func (lsu *LoadStoreUnit) ST(sr uint8, pcOffset9 uint16) {
	addr := lsu.regFile.PC + SignExtend(pcOffset9, 9)
	lsu.memory.Write(addr, lsu.regFile.ReadReg(sr))
}

// STI stores SR into mem[mem[PC + SignExtend(pcOffset9, 9)]].
func (lsu *LoadStoreUnit) STI(sr uint8, pcOffset9 uint16) {
	addr := lsu.regFile.PC + SignExtend(pcOffset9, 9)
	indirect := lsu.memory.Read(addr)
	lsu.memory.Write(indirect, lsu.regFile.ReadReg(sr))
}

// STR stores SR into mem[baseR + SignExtend(offset6, 6)].
func (lsu *LoadStoreUnit) STR(sr, baseR uint8, offset6 uint16) {
	addr := lsu.regFile.ReadReg(baseR) + SignExtend(offset6, 6)
	lsu.memory.Write(addr, lsu.regFile.ReadReg(sr))
}
