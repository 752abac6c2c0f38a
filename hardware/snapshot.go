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
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/ppu"
)

// State stores the NES sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
type State struct {
	CPU  *cpu.CPU
	Bus  *memory.Bus
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		CPU:  s.CPU.Snapshot(),
		Bus:  s.Bus.Snapshot(),
		PPU:  s.PPU.Snapshot(),
		Cart: s.Cart.Snapshot(),
	}
}

// Snapshot the state of the NES sub-systems.
func (nes *NES) Snapshot() *State {
	return &State{
		CPU:  nes.CPU.Snapshot(),
		Bus:  nes.Bus.Snapshot(),
		PPU:  nes.PPU.Snapshot(),
		Cart: nes.Cart.Snapshot(),
	}
}

// Plumb a previously snapshotted system.
func (nes *NES) Plumb(state *State) {
	if state == nil {
		panic("nes: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored in our state
	s := state.Snapshot()
	nes.CPU = s.CPU
	nes.Bus = s.Bus
	nes.PPU = s.PPU
	nes.Cart = s.Cart

	nes.plumb()
}
