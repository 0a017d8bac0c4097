package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lc3sim/emu"
)

var _ = Describe("ALU", func() {
	var (
		r   *emu.RegFile
		alu *emu.ALU
	)

	BeforeEach(func() {
		r = emu.NewRegFile()
		alu = emu.NewALU(r)
	})

	Describe("ADD", func() {
		It("adds two registers and sets COND", func() {
			r.WriteReg(1, 2)
			r.WriteReg(2, 3)
			alu.ADD(0, 1, 2)

			Expect(r.ReadReg(0)).To(Equal(uint16(5)))
			Expect(r.Cond).To(Equal(emu.FlagPositive))
		})

		It("wraps silently on overflow", func() {
			r.WriteReg(0, 0x7FFF)
			alu.ADDImm(0, 0, 1)

			Expect(r.ReadReg(0)).To(Equal(uint16(0x8000)))
			Expect(r.Cond).To(Equal(emu.FlagNegative))
		})
	})

	Describe("ADDImm", func() {
		It("sign-extends a negative imm5", func() {
			r.WriteReg(0, 3)
			alu.ADDImm(0, 0, 0x1F) // imm5 = -1

			Expect(r.ReadReg(0)).To(Equal(uint16(2)))
		})
	})

	Describe("AND", func() {
		It("ANDs two registers", func() {
			r.WriteReg(1, 0xFF0F)
			r.WriteReg(2, 0x0FF0)
			alu.AND(0, 1, 2)

			Expect(r.ReadReg(0)).To(Equal(uint16(0x0F00)))
		})

		It("clears a register via AND #0", func() {
			r.WriteReg(3, 0x1234)
			alu.ANDImm(3, 3, 0)

			Expect(r.ReadReg(3)).To(Equal(uint16(0)))
			Expect(r.Cond).To(Equal(emu.FlagZero))
		})
	})

	Describe("NOT", func() {
		It("complements every bit", func() {
			r.WriteReg(1, 0x0000)
			alu.NOT(0, 1)

			Expect(r.ReadReg(0)).To(Equal(uint16(0xFFFF)))
			Expect(r.Cond).To(Equal(emu.FlagNegative))
		})
	})
})
