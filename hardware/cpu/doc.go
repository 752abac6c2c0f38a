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

// Package cpu emulates the 6502 core of the 2A03 found in the NES. Like all
// 8-bit processors of the era, the 6502 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the instruction
// table. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// The CPU is driven one cycle at a time by the Clock() function. The entire
// effect of an instruction happens on the first cycle, when the opcode is
// fetched. The remaining cycles of the instruction are counted down by
// subsequent calls to Clock(). An instruction is complete when the count
// reaches zero:
//
//	mc := cpu.NewCPU(env, mem)
//	mc.Reset()
//
//	for {
//		mc.Clock()
//		if mc.Complete() {
//			fmt.Println(mc.LastResult)
//		}
//	}
//
// The number of cycles for an instruction is the base number of cycles from
// the instruction definition, plus one if both the addressing mode crossed a
// page boundary and the operator is one that is charged for doing so. Taken
// branches add their own extra cycles.
//
// In the full emulation the memory package's Bus calls Clock() once for
// every three PPU cycles.
//
// The LastResult field can be probed for information about the most recent
// instruction. See the execution package for more information.
package cpu
