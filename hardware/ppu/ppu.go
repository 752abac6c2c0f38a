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

	"github.com/famicore/famicore/environment"
	"github.com/famicore/famicore/hardware/clocks"
	"github.com/famicore/famicore/hardware/memory/cartridge/mapper"
)

// Cartridge defines the cartridge functions required by the PPU.
type Cartridge interface {
	PPURead(address uint16) (uint8, bool)
	PPUWrite(address uint16, data uint8) bool
	Mirroring() mapper.Mirroring
}

// The scanline range of a frame and the scanline on which vertical blanking
// begins.
const (
	PreRenderScanline = -1
	LastScanline      = clocks.ScanlinesPerFrame - 2
	VBlankScanline    = 241
)

// PPU implements the timing and memory of the NES picture processing unit.
type PPU struct {
	env  *environment.Environment
	cart Cartridge

	// current dot and scanline
	Cycle    int
	Scanline int

	// FrameComplete is set when the scanline wraps around to the pre-render
	// line. it should be cleared by whatever is consuming the frame
	FrameComplete bool

	// the number of completed frames since the last reset
	Frame int

	regs registers

	oam        [256]uint8
	nametables [2][0x0400]uint8
	palette    [32]uint8

	// NMI request waiting to be collected by PendingNMI()
	nmi bool
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// environment can be nil.
func NewPPU(env *environment.Environment, cart Cartridge) *PPU {
	ppu := &PPU{
		env:  env,
		cart: cart,
	}
	ppu.Reset()
	return ppu
}

// Snapshot creates a copy of the PPU in its current state. The copy refers
// to the same cartridge.
func (ppu *PPU) Snapshot() *PPU {
	n := *ppu
	return &n
}

// Plumb a new environment and cartridge into the PPU.
func (ppu *PPU) Plumb(env *environment.Environment, cart Cartridge) {
	ppu.env = env
	ppu.cart = cart
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d cycle=%d %s", ppu.Frame, ppu.Scanline, ppu.Cycle, ppu.regs)
}

// Reset the PPU to the start of the pre-render scanline. Memory is not
// cleared.
func (ppu *PPU) Reset() {
	ppu.Cycle = 0
	ppu.Scanline = PreRenderScanline
	ppu.FrameComplete = false
	ppu.Frame = 0
	ppu.regs = registers{}
	ppu.nmi = false
}

// Clock advances the PPU by one dot.
func (ppu *PPU) Clock() {
	switch {
	case ppu.Scanline == PreRenderScanline && ppu.Cycle == 1:
		ppu.regs.status &^= statusVBlank | statusSprite0 | statusOverflow
	case ppu.Scanline == VBlankScanline && ppu.Cycle == 1:
		ppu.regs.status |= statusVBlank
		if ppu.regs.ctrl&ctrlNMI == ctrlNMI {
			ppu.nmi = true
		}
	}

	ppu.Cycle++
	if ppu.Cycle >= clocks.CyclesPerScanline {
		ppu.Cycle = 0
		ppu.Scanline++
		if ppu.Scanline > LastScanline {
			ppu.Scanline = PreRenderScanline
			ppu.FrameComplete = true
			ppu.Frame++
		}
	}
}

// PendingNMI returns true if the PPU has requested an NMI since the last
// call to the function.
func (ppu *PPU) PendingNMI() bool {
	nmi := ppu.nmi
	ppu.nmi = false
	return nmi
}

// InVBlank returns true if the vblank flag in PPUSTATUS is set.
func (ppu *PPU) InVBlank() bool {
	return ppu.regs.status&statusVBlank == statusVBlank
}
