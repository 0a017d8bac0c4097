package emu

// ALU implements the LC-3 arithmetic and logic instructions. Every result
// is written through RegFile.WriteReg, which re-derives COND, so ALU
// itself never touches the condition flags directly.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADD performs register-mode addition: DR = SR1 + SR2 (mod 2^16).
func (a *ALU) ADD(dr, sr1, sr2 uint8) {
	result := a.regFile.ReadReg(sr1) + a.regFile.ReadReg(sr2)
	a.regFile.WriteReg(dr, result)
}

// ADDImm performs immediate-mode addition: DR = SR1 + SignExtend(imm5, 5).
func (a *ALU) ADDImm(dr, sr1 uint8, imm5 uint16) {
	result := a.regFile.ReadReg(sr1) + SignExtend(imm5, 5)
	a.regFile.WriteReg(dr, result)
}

// AND performs register-mode bitwise AND: DR = SR1 & SR2.
func (a *ALU) AND(dr, sr1, sr2 uint8) {
	result := a.regFile.ReadReg(sr1) & a.regFile.ReadReg(sr2)
	a.regFile.WriteReg(dr, result)
}

// ANDImm performs immediate-mode bitwise AND: DR = SR1 & SignExtend(imm5, 5).
func (a *ALU) ANDImm(dr, sr1 uint8, imm5 uint16) {
	result := a.regFile.ReadReg(sr1) & SignExtend(imm5, 5)
	a.regFile.WriteReg(dr, result)
}

// NOT performs bitwise complement: DR = ^SR.
func (a *ALU) NOT(dr, sr uint8) {
	result := ^a.regFile.ReadReg(sr)
	a.regFile.WriteReg(dr, result)
}
