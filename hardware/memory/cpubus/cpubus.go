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

// Package cpubus defines the interface between the CPU and the memory system.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The Bus type in the memory package implements this interface and maps
// the read/write address to the correct memory area, meaning that the CPU
// need not care which part of memory it is accessing.
//
// The readOnly argument to Read() indicates that the read should have no side
// effects. Some registers (the PPU status register for example) change state
// when they are read. A debugger or disassembler reading memory should not
// cause those changes.
type Memory interface {
	Read(address uint16, readOnly bool) uint8
	Write(address uint16, data uint8)
}
