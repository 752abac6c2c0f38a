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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the console.
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginIO   = uint16(0x4000)
	MemtopIO   = uint16(0x401f)
	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// Within the RAM and PPU areas the physical memory is smaller than the area.
// The masks keep only the relevant bits of an address in those areas.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// Memtop is the top most address of memory.
const Memtop = MemtopCart

// MapAddress translates the address argument from mirror space to primary
// space. For RAM the result is an index into the 2KB of internal RAM and for
// the PPU it is the register number. IO and cartridge addresses are returned
// unchanged.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return address & MaskPPU, PPU
	case address <= MemtopIO:
		return address, IO
	}
	return address, Cartridge
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
