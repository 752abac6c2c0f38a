// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// resolveAddress reads the operand bytes for the addressing mode and sets
// addrAbs (or addrRel for relative addressing). returns true if an index
// register moved the effective address onto a different page.
func (mc *CPU) resolveAddress(defn *instructions.Definition) bool {
	var pageCross bool

	switch defn.AddressingMode {
	case instructions.Implied:
		// operators that work on the accumulator treat it as the operand
		mc.fetched = mc.A.Value()

	case instructions.Immediate:
		mc.addrAbs = mc.PC.Address()
		mc.fetched = mc.operand8()

	case instructions.Relative:
		mc.addrRel = uint16(mc.operand8())

		// sign extend the displacement
		if mc.addrRel&0x80 == 0x80 {
			mc.addrRel |= 0xff00
		}

	case instructions.ZeroPage:
		mc.addrAbs = uint16(mc.operand8())

	case instructions.ZeroPageIndexedX:
		mc.addrAbs = mc.zeroPageIndexed(mc.operand8(), mc.X.Value())

	case instructions.ZeroPageIndexedY:
		mc.addrAbs = mc.zeroPageIndexed(mc.operand8(), mc.Y.Value())

	case instructions.Absolute:
		mc.addrAbs = mc.operand16()

	case instructions.AbsoluteIndexedX:
		base := mc.operand16()
		mc.addrAbs = base + mc.X.Address()
		pageCross = mc.addrAbs&0xff00 != base&0xff00

	case instructions.AbsoluteIndexedY:
		base := mc.operand16()
		mc.addrAbs = base + mc.Y.Address()
		pageCross = mc.addrAbs&0xff00 != base&0xff00

	case instructions.Indirect:
		ptr := mc.operand16()

		// the high byte of the target address is read from the same page as
		// the low byte when the pointer is at the end of a page
		hiPtr := ptr + 1
		if ptr&0x00ff == 0x00ff {
			hiPtr = ptr & 0xff00
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
		lo := mc.read(ptr)
		hi := mc.read(hiPtr)
		mc.addrAbs = uint16(hi)<<8 | uint16(lo)

	case instructions.IndexedIndirect:
		// the pointer and the pointer+1 both wrap around the zero page
		t := mc.operand8() + mc.X.Value()
		lo := mc.read(uint16(t))
		hi := mc.read(uint16(t + 1))
		mc.addrAbs = uint16(hi)<<8 | uint16(lo)

	case instructions.IndirectIndexed:
		t := mc.operand8()
		lo := mc.read(uint16(t))
		hi := mc.read(uint16(t + 1))
		base := uint16(hi)<<8 | uint16(lo)
		mc.addrAbs = base + mc.Y.Address()
		pageCross = mc.addrAbs&0xff00 != base&0xff00
	}

	mc.LastResult.EffectiveAddress = mc.addrAbs

	return pageCross
}

// read the single byte operand
func (mc *CPU) operand8() uint8 {
	v := mc.read(mc.PC.Increment())
	mc.LastResult.InstructionData = uint16(v)
	mc.LastResult.ByteCount++
	return v
}

// read the two byte little-endian operand
func (mc *CPU) operand16() uint16 {
	lo := mc.read(mc.PC.Increment())
	hi := mc.read(mc.PC.Increment())
	v := uint16(hi)<<8 | uint16(lo)
	mc.LastResult.InstructionData = v
	mc.LastResult.ByteCount += 2
	return v
}

// zero page indexing never leaves the zero page
func (mc *CPU) zeroPageIndexed(base uint8, index uint8) uint16 {
	if uint16(base)+uint16(index) > 0xff {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}
	return uint16(base + index)
}

// fetch reads the operand for the current instruction. the implied and
// immediate operands were already taken by resolveAddress()
func (mc *CPU) fetch(defn *instructions.Definition) uint8 {
	switch defn.AddressingMode {
	case instructions.Implied:
	case instructions.Immediate:
	default:
		mc.fetched = mc.read(mc.addrAbs)
	}
	return mc.fetched
}
