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

package ppu

import (
	"github.com/famicore/famicore/hardware/memory/cartridge/mapper"
)

// PPURead reads from the PPU bus. The cartridge is given the chance to claim
// the address first.
func (ppu *PPU) PPURead(address uint16) uint8 {
	address &= 0x3fff

	if ppu.cart != nil {
		if v, ok := ppu.cart.PPURead(address); ok {
			return v
		}
	}

	switch {
	case address < 0x2000:
		// pattern tables are always on the cartridge
		return 0
	case address < 0x3f00:
		t, i := ppu.nametable(address)
		return ppu.nametables[t][i]
	}

	return ppu.palette[paletteIndex(address)]
}

// PPUWrite writes to the PPU bus. The cartridge is given the chance to claim
// the address first.
func (ppu *PPU) PPUWrite(address uint16, data uint8) {
	address &= 0x3fff

	if ppu.cart != nil {
		if ppu.cart.PPUWrite(address, data) {
			return
		}
	}

	switch {
	case address < 0x2000:
	case address < 0x3f00:
		t, i := ppu.nametable(address)
		ppu.nametables[t][i] = data
	default:
		ppu.palette[paletteIndex(address)] = data
	}
}

// nametable returns the physical nametable and the index into that table for
// an address in the range 0x2000 to 0x3eff. the range 0x3000 to 0x3eff
// mirrors 0x2000 to 0x2eff
func (ppu *PPU) nametable(address uint16) (int, uint16) {
	address &= 0x0fff
	logical := address / 0x0400
	index := address & 0x03ff

	mirroring := mapper.Horizontal
	if ppu.cart != nil {
		mirroring = ppu.cart.Mirroring()
	}

	switch mirroring {
	case mapper.Vertical:
		return int(logical & 0x01), index
	case mapper.OneScreenLo:
		return 0, index
	case mapper.OneScreenHi:
		return 1, index
	}

	// horizontal mirroring. an image with no mirroring information is also
	// treated as horizontal
	return int(logical >> 1), index
}

// the background colour entries of the sprite palettes are aliases of the
// background palette entries
func paletteIndex(address uint16) uint16 {
	i := address & 0x1f
	if i&0x13 == 0x10 {
		i &^= 0x10
	}
	return i
}
