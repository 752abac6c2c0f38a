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

package mapper

import "fmt"

// mmc1 registers are written one bit at a time through a five bit shift
// register. the fifth write transfers the value of the shift register to
// the register selected by bits 13 and 14 of the address.
type mmc1 struct {
	shift      uint8
	shiftCount int

	// control register:
	//
	//	bits 0-1: mirroring
	//	bits 2-3: PRG bank mode
	//	bit 4:    CHR bank mode (0 = single 8KB bank, 1 = two 4KB banks)
	control uint8

	chr0 uint8
	chr1 uint8
	prg  uint8
}

func (r mmc1) String() string {
	return fmt.Sprintf("ctrl=%05b chr0=%02x chr1=%02x prg=%02x", r.control, r.chr0, r.chr1, r.prg)
}

// the power-on state fixes the last PRG bank at 0xc000
func (r *mmc1) reset() {
	r.shift = 0
	r.shiftCount = 0
	r.control = 0x1c
	r.chr0 = 0
	r.chr1 = 0
	r.prg = 0
}

func (r *mmc1) write(address uint16, data uint8) {
	// writing a value with bit 7 set clears the shift register and sets PRG
	// mode 3
	if data&0x80 == 0x80 {
		r.shift = 0
		r.shiftCount = 0
		r.control |= 0x0c
		return
	}

	r.shift = (r.shift >> 1) | ((data & 0x01) << 4)
	r.shiftCount++
	if r.shiftCount < 5 {
		return
	}

	switch (address >> 13) & 0x03 {
	case 0:
		r.control = r.shift
	case 1:
		r.chr0 = r.shift
	case 2:
		r.chr1 = r.shift
	case 3:
		// bit 4 enables PRG RAM. it is always enabled in this emulation
		r.prg = r.shift & 0x0f
	}

	r.shift = 0
	r.shiftCount = 0
}

func (r mmc1) mirroring() Mirroring {
	switch r.control & 0x03 {
	case 0:
		return OneScreenLo
	case 1:
		return OneScreenHi
	case 2:
		return Vertical
	}
	return Horizontal
}

func (m *Mapper) mmc1PRG(address uint16) uint32 {
	bank := int(m.mmc1.prg) % m.prgBanks

	switch (m.mmc1.control >> 2) & 0x03 {
	case 0, 1:
		// 32KB mode ignores the low bit of the bank number
		return m.bank32((bank>>1)%m.prg32Banks(), address)
	case 2:
		// first bank fixed at 0x8000
		if address < 0xc000 {
			return m.bank16(0, address)
		}
		return m.bank16(bank, address)
	}

	// last bank fixed at 0xc000
	if address < 0xc000 {
		return m.bank16(bank, address)
	}
	return m.bank16(m.prgBanks-1, address)
}

func (m *Mapper) mmc1CHR(address uint16) uint32 {
	// the number of 4KB banks
	banks := m.chrBanks * 2

	if m.mmc1.control&0x10 == 0x00 {
		// 8KB mode ignores the low bit of the bank number
		bank := int(m.mmc1.chr0>>1) % m.chrBanks
		return uint32(bank)*CHRBankSize + uint32(address&0x1fff)
	}

	if address < 0x1000 {
		return uint32(int(m.mmc1.chr0)%banks)*0x1000 + uint32(address&0x0fff)
	}
	return uint32(int(m.mmc1.chr1)%banks)*0x1000 + uint32(address&0x0fff)
}
