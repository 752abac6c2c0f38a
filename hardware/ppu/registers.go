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
	"fmt"

	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// bits in PPUCTRL
const (
	ctrlIncrement = 0x04
	ctrlNMI       = 0x80
)

// bits in PPUSTATUS
const (
	statusOverflow = 0x20
	statusSprite0  = 0x40
	statusVBlank   = 0x80
)

type registers struct {
	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8

	// the current VRAM address and the temporary address. the temporary
	// address is built up by writes to PPUSCROLL and PPUADDR
	v uint16
	t uint16

	fineX uint8

	// the write latch is shared by PPUSCROLL and PPUADDR. false indicates
	// that the next write is the first write
	latch bool

	// PPUDATA reads are delayed by one read except for palette memory
	dataBuffer uint8

	// the value of the last write to any register. reading a write-only
	// register returns this value
	openBus uint8
}

func (r registers) String() string {
	return fmt.Sprintf("ctrl=%02x mask=%02x status=%02x v=%04x t=%04x", r.ctrl, r.mask, r.status, r.v, r.t)
}

func (ppu *PPU) increment() {
	if ppu.regs.ctrl&ctrlIncrement == ctrlIncrement {
		ppu.regs.v += 32
	} else {
		ppu.regs.v++
	}
	ppu.regs.v &= 0x3fff
}

// CPURead reads the PPU register indicated by the lower three bits of the
// register argument. A readOnly read has no side effects.
func (ppu *PPU) CPURead(register uint16, readOnly bool) uint8 {
	switch cpubus.PPURegisters[register&0x07] {
	case cpubus.PPUSTATUS:
		v := ppu.regs.status&0xe0 | ppu.regs.openBus&0x1f
		if !readOnly {
			ppu.regs.status &^= statusVBlank
			ppu.regs.latch = false
		}
		return v

	case cpubus.OAMDATA:
		return ppu.oam[ppu.regs.oamAddr]

	case cpubus.PPUDATA:
		if readOnly {
			if ppu.regs.v >= 0x3f00 {
				return ppu.PPURead(ppu.regs.v)
			}
			return ppu.regs.dataBuffer
		}

		v := ppu.regs.dataBuffer
		ppu.regs.dataBuffer = ppu.PPURead(ppu.regs.v)

		// palette reads are not delayed
		if ppu.regs.v >= 0x3f00 {
			v = ppu.regs.dataBuffer
		}

		ppu.increment()
		return v
	}

	return ppu.regs.openBus
}

// CPUWrite writes to the PPU register indicated by the lower three bits of
// the register argument.
func (ppu *PPU) CPUWrite(register uint16, data uint8) {
	ppu.regs.openBus = data

	switch cpubus.PPURegisters[register&0x07] {
	case cpubus.PPUCTRL:
		// enabling NMI during vblank causes an immediate NMI
		if ppu.regs.ctrl&ctrlNMI == 0 && data&ctrlNMI == ctrlNMI && ppu.InVBlank() {
			ppu.nmi = true
		}
		ppu.regs.ctrl = data
		ppu.regs.t = ppu.regs.t&0xf3ff | uint16(data&0x03)<<10

	case cpubus.PPUMASK:
		ppu.regs.mask = data

	case cpubus.PPUSTATUS:

	case cpubus.OAMADDR:
		ppu.regs.oamAddr = data

	case cpubus.OAMDATA:
		ppu.oam[ppu.regs.oamAddr] = data
		ppu.regs.oamAddr++

	case cpubus.PPUSCROLL:
		if !ppu.regs.latch {
			ppu.regs.fineX = data & 0x07
			ppu.regs.t = ppu.regs.t&0xffe0 | uint16(data>>3)
		} else {
			ppu.regs.t = ppu.regs.t&0x0c1f | uint16(data&0x07)<<12 | uint16(data&0xf8)<<2
		}
		ppu.regs.latch = !ppu.regs.latch

	case cpubus.PPUADDR:
		if !ppu.regs.latch {
			ppu.regs.t = ppu.regs.t&0x00ff | uint16(data&0x3f)<<8
		} else {
			ppu.regs.t = ppu.regs.t&0xff00 | uint16(data)
			ppu.regs.v = ppu.regs.t
		}
		ppu.regs.latch = !ppu.regs.latch

	case cpubus.PPUDATA:
		ppu.PPUWrite(ppu.regs.v, data)
		ppu.increment()
	}
}
