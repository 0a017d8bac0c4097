package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lc3sim/emu"
)

var _ = Describe("SignExtend", func() {
	It("leaves a positive value unchanged", func() {
		Expect(emu.SignExtend(0x05, 5)).To(Equal(uint16(0x0005)))
	})

	It("extends a negative 5-bit value with ones", func() {
		Expect(emu.SignExtend(0x1F, 5)).To(Equal(uint16(0xFFFF)))
	})

	It("extends a negative 9-bit PCoffset9", func() {
		Expect(emu.SignExtend(0x1FF, 9)).To(Equal(uint16(0xFFFF)))
	})

	It("extends a negative 11-bit PCoffset11", func() {
		Expect(emu.SignExtend(0x7FF, 11)).To(Equal(uint16(0xFFFF)))
	})

	It("leaves a positive 11-bit value unchanged", func() {
		Expect(emu.SignExtend(0x002, 11)).To(Equal(uint16(0x0002)))
	})
})

var _ = Describe("Swap16", func() {
	It("exchanges the high and low bytes", func() {
		Expect(emu.Swap16(0x3000)).To(Equal(uint16(0x0030)))
	})

	It("is its own inverse", func() {
		Expect(emu.Swap16(emu.Swap16(0xABCD))).To(Equal(uint16(0xABCD)))
	})
})
