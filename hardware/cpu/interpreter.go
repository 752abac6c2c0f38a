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
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/logger"
)

// execute performs the operation for the instruction. the addressing mode
// has already been resolved. returns true if the operator is charged an
// extra cycle when the addressing mode crosses a page.
func (mc *CPU) execute(defn *instructions.Definition) bool {
	switch defn.Operator {
	case instructions.Illegal:
		mc.illegal(defn)

	case instructions.NOP:

	// loads and stores
	case instructions.LDA:
		mc.A.Load(mc.fetch(defn))
		mc.Status.SetNZ(mc.A.Value())
	case instructions.LDX:
		mc.X.Load(mc.fetch(defn))
		mc.Status.SetNZ(mc.X.Value())
	case instructions.LDY:
		mc.Y.Load(mc.fetch(defn))
		mc.Status.SetNZ(mc.Y.Value())
	case instructions.STA:
		mc.write(mc.addrAbs, mc.A.Value())
	case instructions.STX:
		mc.write(mc.addrAbs, mc.X.Value())
	case instructions.STY:
		mc.write(mc.addrAbs, mc.Y.Value())

	// register transfers
	case instructions.TAX:
		mc.transfer(&mc.X, mc.A, true)
	case instructions.TAY:
		mc.transfer(&mc.Y, mc.A, true)
	case instructions.TSX:
		mc.transfer(&mc.X, mc.SP, true)
	case instructions.TXA:
		mc.transfer(&mc.A, mc.X, true)
	case instructions.TXS:
		mc.transfer(&mc.SP, mc.X, false)
	case instructions.TYA:
		mc.transfer(&mc.A, mc.Y, true)

	// stack
	case instructions.PHA:
		mc.push(mc.A.Value())
	case instructions.PHP:
		mc.push(mc.Status.Value() | registers.FlagBreak | registers.FlagUnused)
	case instructions.PLA:
		mc.A.Load(mc.pull())
		mc.Status.SetNZ(mc.A.Value())
	case instructions.PLP:
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = false

	// logic
	case instructions.AND:
		mc.A.AND(mc.fetch(defn))
		mc.Status.SetNZ(mc.A.Value())
	case instructions.EOR:
		mc.A.EOR(mc.fetch(defn))
		mc.Status.SetNZ(mc.A.Value())
	case instructions.ORA:
		mc.A.ORA(mc.fetch(defn))
		mc.Status.SetNZ(mc.A.Value())
	case instructions.BIT:
		v := mc.fetch(defn)
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40

	// arithmetic. decimal mode is not supported by the 2A03 so the D flag
	// has no effect on ADC and SBC
	case instructions.ADC:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(mc.fetch(defn), mc.Status.Carry)
		mc.Status.SetNZ(mc.A.Value())
	case instructions.SBC:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(mc.fetch(defn), mc.Status.Carry)
		mc.Status.SetNZ(mc.A.Value())
	case instructions.CMP:
		mc.compare(mc.A, mc.fetch(defn))
	case instructions.CPX:
		mc.compare(mc.X, mc.fetch(defn))
	case instructions.CPY:
		mc.compare(mc.Y, mc.fetch(defn))

	// increments and decrements
	case instructions.INC:
		r := registers.NewAnonRegister(mc.fetch(defn))
		r.Increment()
		mc.write(mc.addrAbs, r.Value())
		mc.Status.SetNZ(r.Value())
	case instructions.DEC:
		r := registers.NewAnonRegister(mc.fetch(defn))
		r.Decrement()
		mc.write(mc.addrAbs, r.Value())
		mc.Status.SetNZ(r.Value())
	case instructions.INX:
		mc.X.Increment()
		mc.Status.SetNZ(mc.X.Value())
	case instructions.INY:
		mc.Y.Increment()
		mc.Status.SetNZ(mc.Y.Value())
	case instructions.DEX:
		mc.X.Decrement()
		mc.Status.SetNZ(mc.X.Value())
	case instructions.DEY:
		mc.Y.Decrement()
		mc.Status.SetNZ(mc.Y.Value())

	// shifts and rotates
	case instructions.ASL:
		r := registers.NewAnonRegister(mc.fetch(defn))
		mc.Status.Carry = r.ASL()
		mc.shiftResult(defn, r.Value())
	case instructions.LSR:
		r := registers.NewAnonRegister(mc.fetch(defn))
		mc.Status.Carry = r.LSR()
		mc.shiftResult(defn, r.Value())
	case instructions.ROL:
		r := registers.NewAnonRegister(mc.fetch(defn))
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.shiftResult(defn, r.Value())
	case instructions.ROR:
		r := registers.NewAnonRegister(mc.fetch(defn))
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.shiftResult(defn, r.Value())

	// jumps and calls
	case instructions.JMP:
		mc.PC.Load(mc.addrAbs)
	case instructions.JSR:
		mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(mc.addrAbs)
	case instructions.RTS:
		mc.PC.Load(mc.pull16() + 1)

	// branches
	case instructions.BCC:
		mc.branch(!mc.Status.Carry)
	case instructions.BCS:
		mc.branch(mc.Status.Carry)
	case instructions.BEQ:
		mc.branch(mc.Status.Zero)
	case instructions.BNE:
		mc.branch(!mc.Status.Zero)
	case instructions.BMI:
		mc.branch(mc.Status.Sign)
	case instructions.BPL:
		mc.branch(!mc.Status.Sign)
	case instructions.BVC:
		mc.branch(!mc.Status.Overflow)
	case instructions.BVS:
		mc.branch(mc.Status.Overflow)

	// flags
	case instructions.CLC:
		mc.Status.Carry = false
	case instructions.CLD:
		mc.Status.DecimalMode = false
	case instructions.CLI:
		mc.Status.InterruptDisable = false
	case instructions.CLV:
		mc.Status.Overflow = false
	case instructions.SEC:
		mc.Status.Carry = true
	case instructions.SED:
		mc.Status.DecimalMode = true
	case instructions.SEI:
		mc.Status.InterruptDisable = true

	// interrupts. BRK reads and discards the padding byte that follows the
	// opcode
	case instructions.BRK:
		mc.operand8()
		mc.interrupt(cpubus.IRQ, true)
	case instructions.RTI:
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = false
		mc.PC.Load(mc.pull16())
	}

	return defn.Operator.HonoursPageCross()
}

func (mc *CPU) transfer(dest *registers.Register, src registers.Register, nz bool) {
	dest.Load(src.Value())
	if nz {
		mc.Status.SetNZ(dest.Value())
	}
}

func (mc *CPU) compare(r registers.Register, v uint8) {
	mc.Status.Carry = r.Value() >= v
	mc.Status.SetNZ(r.Value() - v)
}

// the result of a shift or rotate goes to the accumulator in the implied
// addressing mode and back to memory otherwise
func (mc *CPU) shiftResult(defn *instructions.Definition, v uint8) {
	if defn.AddressingMode == instructions.Implied {
		mc.A.Load(v)
	} else {
		mc.write(mc.addrAbs, v)
	}
	mc.Status.SetNZ(v)
}

// a taken branch costs one extra cycle and another if the destination is on
// a different page to the instruction that follows the branch
func (mc *CPU) branch(cond bool) {
	if !cond {
		return
	}

	mc.LastResult.BranchSuccess = true
	mc.cycles++

	mc.addrAbs = mc.PC.Address() + mc.addrRel
	if mc.addrAbs&0xff00 != mc.PC.Address()&0xff00 {
		mc.cycles++
		mc.LastResult.PageFault = true
	}

	mc.LastResult.EffectiveAddress = mc.addrAbs
	mc.PC.Load(mc.addrAbs)
}

// undocumented opcodes are treated as single byte instructions that do
// nothing except take time
func (mc *CPU) illegal(defn *instructions.Definition) {
	if mc.env == nil {
		logger.Logf(logger.Allow, "cpu", "illegal opcode %02x at %04x", defn.OpCode, mc.LastResult.Address)
		return
	}
	if mc.env.Prefs.LogIllegalOpcodes.Get().(bool) {
		logger.Logf(mc.env, "cpu", "illegal opcode %02x at %04x", defn.OpCode, mc.LastResult.Address)
	}
}
