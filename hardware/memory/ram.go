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

package memory

import (
	"encoding/hex"

	"github.com/famicore/famicore/environment"
	"github.com/famicore/famicore/hardware/memory/memorymap"
)

// RAM represents the 2KB of internal RAM in the NES.
type RAM struct {
	env *environment.Environment

	RAM []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM(env *environment.Environment) *RAM {
	return &RAM{
		env: env,
		RAM: make([]uint8, memorymap.MaskRAM+1),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.RAM = make([]uint8, len(ram.RAM))
	copy(n.RAM, ram.RAM)
	return &n
}

// Reset contents of RAM. The contents are random if the RandomState
// preference is set. Random contents depend only on the seed and the
// emulation clock at the time of the reset.
func (ram *RAM) Reset() {
	if ram.env != nil && ram.env.Prefs.RandomState.Get().(bool) {
		ram.env.Random.RewindableFill(ram.RAM)
		return
	}
	clear(ram.RAM)
}

func (ram *RAM) String() string {
	return hex.Dump(ram.RAM)
}

// Read from RAM. Address must be normalised.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.RAM[address&memorymap.MaskRAM]
}

// Write to RAM. Address must be normalised.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.RAM[address&memorymap.MaskRAM] = data
}
