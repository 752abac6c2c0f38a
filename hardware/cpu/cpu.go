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
	"fmt"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/environment"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// NoBus is returned by Reset() when the CPU has no memory attached.
const NoBus = "cpu: reset with no bus attached"

// Number of cycles taken by the reset and interrupt sequences.
const (
	ResetCycles = 8
	IRQCycles   = 7
	NMICycles   = 8
)

// CPU implements the 6502 found as part of the 2A03 in the NES. Register
// logic is implemented by the types in the registers sub-package.
type CPU struct {
	env *environment.Environment

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem cpubus.Memory

	// the state of the instruction in flight. the operand is only read
	// from memory by operators that need it
	opcode  uint8
	fetched uint8
	addrAbs uint16
	addrRel uint16

	// the number of cycles remaining for the current instruction. a new
	// instruction is fetched on the next call to Clock() when this is zero
	cycles int

	// the number of instructions fetched since the last reset
	instructionCount uint64

	// LastResult describes the most recent instruction. it is updated when
	// the instruction is fetched and finalised when the last cycle has been
	// counted
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// environment can be nil.
//
// The CPU must be reset with Reset() before it is clocked.
func NewCPU(env *environment.Environment, mem cpubus.Memory) *CPU {
	return &CPU{
		env:    env,
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.StatusRegister{},
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(env *environment.Environment, mem cpubus.Memory) {
	mc.env = env
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC from the reset vector.
// The reset sequence takes eight cycles, which are counted down by the
// following calls to Clock().
func (mc *CPU) Reset() error {
	if mc.mem == nil {
		return curated.Errorf(NoBus)
	}

	mc.LastResult.Reset()

	mc.PC.Load(mc.read16(cpubus.Reset))
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()

	mc.opcode = 0
	mc.fetched = 0
	mc.addrAbs = 0
	mc.addrRel = 0
	mc.instructionCount = 0

	mc.cycles = ResetCycles

	return nil
}

// IRQ requests a maskable interrupt. The request is ignored if the interrupt
// disable flag is set. Should only be called when the CPU is between
// instructions.
func (mc *CPU) IRQ() {
	if mc.Status.InterruptDisable {
		return
	}
	mc.interrupt(cpubus.IRQ, false)
	mc.cycles = IRQCycles
}

// NMI requests a non-maskable interrupt. Should only be called when the CPU
// is between instructions.
func (mc *CPU) NMI() {
	mc.interrupt(cpubus.NMI, false)
	mc.cycles = NMICycles
}

// push PC and status onto the stack and load PC from the vector. the break
// flag is only set in the copy of the status register pushed by BRK
func (mc *CPU) interrupt(vector uint16, brk bool) {
	mc.push16(mc.PC.Address())
	st := mc.Status.Value()
	if brk {
		st |= registers.FlagBreak
	} else {
		st &^= registers.FlagBreak
	}
	mc.push(st)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16(vector))
}

// Complete returns true if the CPU is between instructions.
func (mc *CPU) Complete() bool {
	return mc.cycles == 0
}

// InstructionCount returns the number of instructions fetched since the last
// reset.
func (mc *CPU) InstructionCount() uint64 {
	return mc.instructionCount
}

// Clock advances the CPU by one cycle. If no instruction is in progress then
// the next instruction is fetched and executed and the number of cycles it
// takes is calculated.
func (mc *CPU) Clock() {
	if mc.cycles == 0 {
		mc.LastResult.Reset()
		mc.LastResult.Address = mc.PC.Address()

		mc.opcode = mc.read(mc.PC.Increment())
		mc.instructionCount++

		defn := &instructions.Definitions[mc.opcode]
		mc.LastResult.Defn = defn
		mc.LastResult.ByteCount = 1

		mc.cycles = defn.Cycles

		// the extra cycle is only charged if the addressing mode crossed a
		// page and the operator is one that is charged for it
		modeExtra := mc.resolveAddress(defn)
		opExtra := mc.execute(defn)
		if modeExtra && opExtra {
			mc.cycles++
			mc.LastResult.PageFault = true
		}

		mc.LastResult.Cycles = mc.cycles
	}

	mc.cycles--
	if mc.cycles == 0 {
		mc.LastResult.Final = true
	}
}

func (mc *CPU) read(address uint16) uint8 {
	return mc.mem.Read(address, false)
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.mem.Write(address, data)
}

func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.read(address)
	hi := mc.read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// the stack pointer wraps around within the stack page
func (mc *CPU) push(data uint8) {
	mc.write(cpubus.StackPage|mc.SP.Address(), data)
	mc.SP.Decrement()
}

func (mc *CPU) pull() uint8 {
	mc.SP.Increment()
	return mc.read(cpubus.StackPage | mc.SP.Address())
}

func (mc *CPU) push16(data uint16) {
	mc.push(uint8(data >> 8))
	mc.push(uint8(data))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}
