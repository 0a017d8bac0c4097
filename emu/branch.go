package emu

// BranchUnit implements the LC-3 control-flow instructions: BR, JMP/RET,
// and JSR/JSRR.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a new BranchUnit connected to the given register
// file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// BR conditionally branches PC-relative by pcOffset9 when any of the n, z,
// p bits set in the instruction matches the current COND flag.
func (b *BranchUnit) BR(n, z, p bool, pcOffset9 uint16) {
	if b.taken(n, z, p) {
		b.regFile.PC += SignExtend(pcOffset9, 9)
	}
}

func (b *BranchUnit) taken(n, z, p bool) bool {
	switch b.regFile.Cond {
	case FlagNegative:
		return n
	case FlagZero:
		return z
	case FlagPositive:
		return p
	default:
		return false
	}
}

// JMP sets PC to the value in baseR. RET is JMP with baseR == R7 and needs
// no special case.
func (b *BranchUnit) JMP(baseR uint8) {
	b.regFile.PC = b.regFile.ReadReg(baseR)
}

// JSR saves the (already-incremented) return address in R7, then branches
// PC-relative by pcOffset11.
func (b *BranchUnit) JSR(pcOffset11 uint16) {
	b.regFile.R[7] = b.regFile.PC
	b.regFile.PC += SignExtend(pcOffset11, 11)
}

// JSRR saves the return address in R7, then branches to the address held
// in baseR. The target is read before R7 is overwritten, so JSRR R7 is
// well-defined (it branches to the old value of R7).
func (b *BranchUnit) JSRR(baseR uint8) {
	target := b.regFile.ReadReg(baseR)
	b.regFile.R[7] = b.regFile.PC
	b.regFile.PC = target
}
