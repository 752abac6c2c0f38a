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

package cpubus

// Addresses where interrupt vectors are stored. Each vector is a 16 bit
// little-endian value.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// StackPage is the page of memory used by the stack.
const StackPage = uint16(0x0100)

// Register represents a named address in PPU register memory.
type Register string

// List of PPU registers as seen by the CPU.
const (
	PPUCTRL   Register = "PPUCTRL"
	PPUMASK   Register = "PPUMASK"
	PPUSTATUS Register = "PPUSTATUS"
	OAMADDR   Register = "OAMADDR"
	OAMDATA   Register = "OAMDATA"
	PPUSCROLL Register = "PPUSCROLL"
	PPUADDR   Register = "PPUADDR"
	PPUDATA   Register = "PPUDATA"
)

// PPURegisters indexes the PPU register names by their offset in the
// register window. The register window is mirrored every eight bytes.
var PPURegisters = [8]Register{
	PPUCTRL,
	PPUMASK,
	PPUSTATUS,
	OAMADDR,
	OAMDATA,
	PPUSCROLL,
	PPUADDR,
	PPUDATA,
}
