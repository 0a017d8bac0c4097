package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lc3sim/emu"
)

var _ = Describe("LoadStoreUnit", func() {
	var (
		r   *emu.RegFile
		mem *emu.Memory
		lsu *emu.LoadStoreUnit
	)

	BeforeEach(func() {
		r = emu.NewRegFile()
		mem = emu.NewMemory()
		lsu = emu.NewLoadStoreUnit(r, mem)
	})

	Describe("LD", func() {
		It("loads DR from PC + offset9 and sets flags", func() {
			r.PC = 0x3001
			mem.Write(0x3003, 0x00AB)

			lsu.LD(0, 0x002)

			Expect(r.ReadReg(0)).To(Equal(uint16(0x00AB)))
			Expect(r.Cond).To(Equal(emu.FlagPositive))
		})
	})

	Describe("LDI", func() {
		It("loads DR through one level of indirection", func() {
			r.PC = 0x3001
			mem.Write(0x3100, 0x3200)
			mem.Write(0x3200, 0x00AB)

			lsu.LDI(0, 0xFF)

			Expect(r.ReadReg(0)).To(Equal(uint16(0x00AB)))
		})
	})

	Describe("LDR", func() {
		It("loads DR from baseR + offset6", func() {
			r.WriteReg(1, 0x4000)
			mem.Write(0x4003, 0x1234)

			lsu.LDR(0, 1, 0x3)

			Expect(r.ReadReg(0)).To(Equal(uint16(0x1234)))
			Expect(r.Cond).To(Equal(emu.FlagPositive))
		})
	})

	Describe("LEA", func() {
		It("loads DR with the computed address itself, and sets flags", func() {
			r.PC = 0x3001

			lsu.LEA(0, 0x002)

			Expect(r.ReadReg(0)).To(Equal(uint16(0x3003)))
			Expect(r.Cond).To(Equal(emu.FlagPositive))
		})
	})

	Describe("ST", func() {
		It("stores SR at PC + offset9 without touching COND", func() {
			r.Cond = emu.FlagNegative
			r.PC = 0x3001
			r.WriteReg(0, 0x1234)
			r.Cond = emu.FlagNegative // WriteReg above would have reset it; pin it back

			lsu.ST(0, 0x002)

			Expect(mem.Read(0x3003)).To(Equal(uint16(0x1234)))
			Expect(r.Cond).To(Equal(emu.FlagNegative))
		})
	})

	Describe("STI", func() {
		It("stores SR through one level of indirection without touching COND", func() {
			r.PC = 0x3001
			mem.Write(0x3003, 0x4000)
			r.WriteReg(0, 0x5678)
			r.Cond = emu.FlagZero

			lsu.STI(0, 0x002)

			Expect(mem.Read(0x4000)).To(Equal(uint16(0x5678)))
			Expect(r.Cond).To(Equal(emu.FlagZero))
		})
	})

	Describe("STR", func() {
		It("stores SR at baseR + offset6 without touching COND", func() {
			r.WriteReg(1, 0x4000)
			r.WriteReg(0, 0x9ABC)
			r.Cond = emu.FlagPositive

			lsu.STR(0, 1, 0x3)

			Expect(mem.Read(0x4003)).To(Equal(uint16(0x9ABC)))
			Expect(r.Cond).To(Equal(emu.FlagPositive))
		})
	})
})
