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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := &mockMem{
		internal: make([]uint8, 0x10000),
	}

	// reset vector points to 0x8000, IRQ/BRK vector to 0x9000 and the NMI
	// vector to 0xa000
	mem.internal[0xfffc] = 0x00
	mem.internal[0xfffd] = 0x80
	mem.internal[0xfffe] = 0x00
	mem.internal[0xffff] = 0x90
	mem.internal[0xfffa] = 0x00
	mem.internal[0xfffb] = 0xa0

	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16, _ bool) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func newCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)
	test.DemandSuccess(t, mc.Reset())
	return mc, mem
}

// step clocks the CPU until the next instruction has completed
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	n := mc.InstructionCount()
	for mc.InstructionCount() == n || !mc.Complete() {
		mc.Clock()
	}
	test.DemandSuccess(t, mc.LastResult.IsValid())
	return mc.LastResult
}

func TestReset(t *testing.T) {
	mc, _ := newCPU(t)
	test.ExpectEquality(t, mc.PC.Address(), 0x8000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.Status.Value(), 0x20)
	test.ExpectEquality(t, mc.Complete(), false)

	// reset takes eight cycles before the first instruction is fetched
	for range cpu.ResetCycles {
		mc.Clock()
	}
	test.ExpectEquality(t, mc.Complete(), true)
	test.ExpectEquality(t, mc.InstructionCount(), 0)
}

func TestResetWithoutBus(t *testing.T) {
	mc := cpu.NewCPU(nil, nil)
	err := mc.Reset()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.NoBus), true)
}

func TestClockCycles(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(0x8000, 0xa9, 0x01) // LDA #1

	for range cpu.ResetCycles {
		mc.Clock()
	}

	// the instruction takes effect on the first cycle
	mc.Clock()
	test.ExpectEquality(t, mc.InstructionCount(), 1)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.Complete(), false)
	test.ExpectEquality(t, mc.LastResult.Final, false)

	mc.Clock()
	test.ExpectEquality(t, mc.Complete(), true)
	test.ExpectEquality(t, mc.LastResult.Final, true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newCPU(t)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV; PHP; PLP
	mem.putInstructions(0x8000, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8, 0x08, 0x28)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "sv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")

	// PHP pushes the status register with the break and unused bits set
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	test.ExpectEquality(t, mem.internal[0x01fd], 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// PLP restores the status register but never the break flag
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
}

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU(t)

	origin := mem.putInstructions(0x8000,
		0xa9, 0x01, // LDA #1
		0x69, 0x0a, // ADC #10
		0x38,       // SEC
		0xe9, 0x0b, // SBC #11
		0x18,       // CLC
		0xa9, 0x7f, // LDA #$7f
		0x69, 0x01, // ADC #1
	)
	mem.putInstructions(origin,
		0xa9, 0xff, // LDA #$ff
		0x18,       // CLC
		0x69, 0x01, // ADC #1
	)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 11)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZC")

	// signed overflow
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.String(), "SV-bdizc")

	// unsigned carry
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZC")
}

func TestCompareAndBit(t *testing.T) {
	mc, mem := newCPU(t)
	mem.internal[0x0010] = 0xc0

	mem.putInstructions(0x8000,
		0xa9, 0x05, // LDA #5
		0xc9, 0x05, // CMP #5
		0xc9, 0x06, // CMP #6
		0xa9, 0x01, // LDA #1
		0x24, 0x10, // BIT $10
	)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZC")
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizc")
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.Status.String(), "SV-bdiZc")
}

func TestShiftsAndIncrements(t *testing.T) {
	mc, mem := newCPU(t)
	mem.internal[0x0010] = 0x01
	mem.internal[0x0011] = 0xff

	mem.putInstructions(0x8000,
		0xa9, 0x81, // LDA #$81
		0x0a,       // ASL A
		0x46, 0x10, // LSR $10
		0x6a,       // ROR A
		0xe6, 0x11, // INC $11
		0xc6, 0x11, // DEC $11
	)

	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizC")

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mem.internal[0x0010], 0x00)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZC")

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x81)
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizc")

	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0011], 0x00)
	test.ExpectEquality(t, mc.Status.Zero, true)

	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0011], 0xff)
	test.ExpectEquality(t, mc.Status.Sign, true)
}

func TestPageCrossing(t *testing.T) {
	mc, mem := newCPU(t)
	mem.internal[0x0300] = 0x42
	mem.internal[0x0301] = 0x43
	mem.internal[0x0010] = 0xff
	mem.internal[0x0011] = 0x02

	mem.putInstructions(0x8000,
		0xa2, 0x01,       // LDX #1
		0xbd, 0xff, 0x02, // LDA $02ff,X
		0xbd, 0x00, 0x03, // LDA $0300,X
		0x9d, 0xff, 0x02, // STA $02ff,X
		0xa0, 0x01,       // LDY #1
		0xb1, 0x10,       // LDA ($10),Y
	)

	step(t, mc)

	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.String(), "8002 LDA 02ff [5] page fault")

	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x43)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, r.PageFault, false)

	// stores are never charged for crossing a page
	r = step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0300], 0x43)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, r.PageFault, false)

	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x43)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, r.PageFault, true)
}

func TestBranching(t *testing.T) {
	mc, mem := newCPU(t)

	mem.putInstructions(0x8000,
		0xa9, 0x00,       // LDA #0
		0xf0, 0x02,       // BEQ +2
		0xea, 0xea,       // NOP; NOP
		0xd0, 0x10,       // BNE +16
		0x4c, 0xfd, 0x80, // JMP $80fd
	)
	mem.putInstructions(0x80fd, 0xf0, 0x10) // BEQ +16
	mem.putInstructions(0x810f, 0xf0, 0xfc) // BEQ -4

	step(t, mc)

	r := step(t, mc)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x8006)

	r = step(t, mc)
	test.ExpectEquality(t, r.BranchSuccess, false)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x8008)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x80fd)

	r = step(t, mc)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x810f)

	r = step(t, mc)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x810d)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t)

	mem.putInstructions(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	mem.putInstructions(0x9000, 0x60)             // RTS

	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x9000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)
	test.ExpectEquality(t, mem.internal[0x01fd], 0x80)
	test.ExpectEquality(t, mem.internal[0x01fc], 0x02)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x8003)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestCPUBugs(t *testing.T) {
	mc, mem := newCPU(t)
	mem.internal[0x02ff] = 0x34
	mem.internal[0x0300] = 0x12
	mem.internal[0x0200] = 0x56
	mem.internal[0x0008] = 0x99

	mem.putInstructions(0x8000,
		0xa2, 0x10,       // LDX #$10
		0xb5, 0xf8,       // LDA $f8,X
		0x6c, 0xff, 0x02, // JMP ($02ff)
	)

	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectEquality(t, r.EffectiveAddress, 0x0008)
	test.ExpectEquality(t, r.CPUBug, execution.ZeroPageIndexBug)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.PC.Address(), 0x5634)
	test.ExpectEquality(t, r.CPUBug, execution.JmpIndirectAddressingBug)
}

func TestStackWrap(t *testing.T) {
	mc, mem := newCPU(t)

	mem.putInstructions(0x8000,
		0xa2, 0x00, // LDX #0
		0x9a,       // TXS
		0xa9, 0x77, // LDA #$77
		0x48,       // PHA
		0xa9, 0x00, // LDA #0
		0x68,       // PLA
	)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0100], 0x77)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.A.Value(), 0x77)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
}

func TestBreakAndReturn(t *testing.T) {
	mc, mem := newCPU(t)

	mem.putInstructions(0x8000, 0x00, 0xea) // BRK; padding
	mem.putInstructions(0x9000, 0x40)       // RTI

	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, r.ByteCount, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x9000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, mem.internal[0x01fd], 0x80)
	test.ExpectEquality(t, mem.internal[0x01fc], 0x02)
	test.ExpectEquality(t, mem.internal[0x01fb], 0x30)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x8002)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
}

func TestInterrupts(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(0x8000, 0xea) // NOP

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x8001)

	mc.IRQ()
	test.ExpectEquality(t, mc.PC.Address(), 0x9000)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, mem.internal[0x01fd], 0x80)
	test.ExpectEquality(t, mem.internal[0x01fc], 0x01)
	test.ExpectEquality(t, mem.internal[0x01fb], 0x20)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)

	for range cpu.IRQCycles {
		test.ExpectEquality(t, mc.Complete(), false)
		mc.Clock()
	}
	test.ExpectEquality(t, mc.Complete(), true)

	// IRQ is masked by the interrupt disable flag
	mc.IRQ()
	test.ExpectEquality(t, mc.PC.Address(), 0x9000)
	test.ExpectEquality(t, mc.Complete(), true)

	// but NMI is not
	mc.NMI()
	test.ExpectEquality(t, mc.PC.Address(), 0xa000)
	test.ExpectEquality(t, mc.SP.Value(), 0xf7)
	for range cpu.NMICycles {
		test.ExpectEquality(t, mc.Complete(), false)
		mc.Clock()
	}
	test.ExpectEquality(t, mc.Complete(), true)
}

func TestIllegalOpcode(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(0x8000, 0x02, 0xa9, 0x01) // illegal; LDA #1

	r := step(t, mc)
	test.ExpectEquality(t, r.Defn.IsIllegal(), true)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x8001)

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, strings.Contains(s.String(), "cpu: illegal opcode 02 at 8000"), true)

	// execution continues with the next byte
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
}

func TestIllegalOpcodeRegisters(t *testing.T) {
	mc, mem := newCPU(t)
	opcodes := []uint8{0x02, 0x03, 0x1a, 0x80, 0xff}
	mem.putInstructions(0x8000, opcodes...)

	mc.A.Load(0x55)
	mc.X.Load(0x12)
	mc.Y.Load(0x34)
	mc.Status.FromValue(registers.FlagCarry)
	sp := mc.SP.Value()
	status := mc.Status.Value()

	for i, op := range opcodes {
		r := step(t, mc)
		test.ExpectEquality(t, r.Defn.OpCode, op)
		test.ExpectEquality(t, r.Defn.IsIllegal(), true, op)
		test.ExpectEquality(t, r.Cycles, 2, op)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x8001+i), op)

		test.ExpectEquality(t, mc.A.Value(), 0x55, op)
		test.ExpectEquality(t, mc.X.Value(), 0x12, op)
		test.ExpectEquality(t, mc.Y.Value(), 0x34, op)
		test.ExpectEquality(t, mc.SP.Value(), sp, op)
		test.ExpectEquality(t, mc.Status.Value(), status, op)
	}
}

func TestTransfers(t *testing.T) {
	mc, mem := newCPU(t)

	mem.putInstructions(0x8000,
		0xa9, 0x80, // LDA #$80
		0xaa,       // TAX
		0xa8,       // TAY
		0xba,       // TSX
		0xa9, 0x00, // LDA #0
		0x98,       // TYA
	)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x80)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0x80)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.Sign, true)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.InstructionCount(), 6)
}
