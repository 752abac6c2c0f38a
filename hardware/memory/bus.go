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
	"fmt"

	"github.com/famicore/famicore/environment"
	"github.com/famicore/famicore/hardware/clocks"
	"github.com/famicore/famicore/hardware/memory/memorymap"
)

// CPU defines the CPU functions required by the Bus.
type CPU interface {
	Clock()
	Reset() error
	Complete() bool
	NMI()
}

// PPU defines the PPU functions required by the Bus.
type PPU interface {
	Clock()
	CPURead(register uint16, readOnly bool) uint8
	CPUWrite(register uint16, data uint8)
	PendingNMI() bool
}

// Cartridge defines the cartridge functions required by the Bus.
type Cartridge interface {
	CPURead(address uint16) (uint8, bool)
	CPUWrite(address uint16, data uint8) bool
}

// Bus is the CPU bus of the NES. It implements the cpubus.Memory interface.
type Bus struct {
	env *environment.Environment

	RAM *RAM

	cpu  CPU
	ppu  PPU
	cart Cartridge

	// the number of times Clock() has been called since the last reset
	counter uint64

	// an NMI request from the PPU that is waiting for the CPU to reach the
	// end of the current instruction
	nmi bool
}

// NewBus is the preferred method of initialisation for the Bus type. The
// contents of RAM are initialised according to the RandomState preference.
//
// The CPU, PPU and cartridge must be plumbed in with Plumb() before the Bus
// is used.
func NewBus(env *environment.Environment) *Bus {
	bus := &Bus{
		env: env,
		RAM: NewRAM(env),
	}
	bus.RAM.Reset()
	return bus
}

// Plumb the components of the console into the Bus. None of the components
// are owned by the Bus. Any of the arguments can be nil.
func (bus *Bus) Plumb(env *environment.Environment, cpu CPU, ppu PPU, cart Cartridge) {
	bus.env = env
	bus.RAM.env = env
	bus.cpu = cpu
	bus.ppu = ppu
	bus.cart = cart
}

// Snapshot creates a copy of the Bus in its current state. The copy must be
// plumbed before use.
func (bus *Bus) Snapshot() *Bus {
	n := *bus
	n.RAM = bus.RAM.Snapshot()
	n.cpu = nil
	n.ppu = nil
	n.cart = nil
	return &n
}

func (bus *Bus) String() string {
	return fmt.Sprintf("counter=%d", bus.counter)
}

// Counter returns the number of times Clock() has been called since the
// last reset. Implements the random.Clock interface.
func (bus *Bus) Counter() uint64 {
	return bus.counter
}

// Reset the CPU and the clock counter. The contents of RAM are not changed.
func (bus *Bus) Reset() error {
	bus.counter = 0
	bus.nmi = false
	if bus.cpu == nil {
		return nil
	}
	return bus.cpu.Reset()
}

// Clock advances the PPU by one cycle and, on every third call, the CPU by
// one cycle. The PPU is always clocked before the CPU.
func (bus *Bus) Clock() {
	if bus.ppu != nil {
		bus.ppu.Clock()
		if bus.ppu.PendingNMI() {
			bus.nmi = true
		}
	}

	if bus.counter%clocks.PPUPerCPU == 0 && bus.cpu != nil {
		if bus.nmi && bus.cpu.Complete() {
			bus.cpu.NMI()
			bus.nmi = false
		}
		bus.cpu.Clock()
	}

	bus.counter++
}

// Read a value from the bus. A readOnly read has no side effects. Implements
// the cpubus.Memory interface.
func (bus *Bus) Read(address uint16, readOnly bool) uint8 {
	if bus.cart != nil {
		if v, ok := bus.cart.CPURead(address); ok {
			return v
		}
	}

	addr, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		return bus.RAM.Read(addr)
	case memorymap.PPU:
		if bus.ppu != nil {
			return bus.ppu.CPURead(addr, readOnly)
		}
	}

	return bus.unmapped()
}

// Write a value to the bus. Implements the cpubus.Memory interface.
func (bus *Bus) Write(address uint16, data uint8) {
	if bus.cart != nil {
		if bus.cart.CPUWrite(address, data) {
			return
		}
	}

	addr, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		bus.RAM.Write(addr, data)
	case memorymap.PPU:
		if bus.ppu != nil {
			bus.ppu.CPUWrite(addr, data)
		}
	}
}

func (bus *Bus) unmapped() uint8 {
	if bus.env == nil {
		return 0
	}
	return bus.env.Prefs.Unmapped()
}
