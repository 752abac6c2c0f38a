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

package hardware

import (
	"fmt"

	"github.com/famicore/famicore/environment"
	"github.com/famicore/famicore/hardware/clocks"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/ppu"
)

// NES is the main container for the emulated components of the NES.
type NES struct {
	Env *environment.Environment

	CPU  *cpu.CPU
	Bus  *memory.Bus
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge
}

// NewNES creates a new NES and everything associated with the hardware. The
// cartridge is created from the Image and the console is reset.
//
// The environment argument can be nil, in which case an environment for the
// main emulation is created.
func NewNES(env *environment.Environment, img cartridge.Image) (*NES, error) {
	if env == nil {
		var err error
		env, err = environment.NewEnvironment(environment.MainEmulation, nil)
		if err != nil {
			return nil, err
		}
	}

	cart, err := cartridge.NewCartridge(env, img)
	if err != nil {
		return nil, err
	}

	nes := &NES{
		Env:  env,
		Cart: cart,
		Bus:  memory.NewBus(env),
	}
	nes.PPU = ppu.NewPPU(env, nes.Cart)
	nes.CPU = cpu.NewCPU(env, nes.Bus)
	nes.plumb()

	if err := nes.Reset(); err != nil {
		return nil, err
	}

	return nes, nil
}

// connect the non-owning references between components
func (nes *NES) plumb() {
	nes.Bus.Plumb(nes.Env, nes.CPU, nes.PPU, nes.Cart)
	nes.PPU.Plumb(nes.Env, nes.Cart)
	nes.CPU.Plumb(nes.Env, nes.Bus)
	nes.Cart.Plumb(nes.Env)
	nes.Env.Random.Plumb(nes.Bus)
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s\n%s\n%s", nes.Cart, nes.CPU, nes.PPU)
}

// Reset emulates the reset button on the console. The mapper, the PPU and
// the CPU are reset and the system clock counter returns to zero. RAM is
// unchanged.
func (nes *NES) Reset() error {
	nes.Cart.Reset()
	nes.PPU.Reset()
	return nes.Bus.Reset()
}

// Clock advances the emulation by one PPU cycle.
func (nes *NES) Clock() {
	nes.Bus.Clock()
}

// Step advances the emulation by exactly one CPU instruction. Any cycles
// remaining from a reset or an interrupt are run first. The PPU is kept in
// lock step with the CPU.
func (nes *NES) Step() execution.Result {
	n := nes.CPU.InstructionCount()
	for nes.CPU.InstructionCount() == n || !nes.CPU.Complete() {
		nes.Bus.Clock()
	}
	return nes.CPU.LastResult
}

// FrameRate returns the number of frames per second produced by the NTSC
// console.
func (nes *NES) FrameRate() float64 {
	return clocks.FramesPerSecondNTSC
}
