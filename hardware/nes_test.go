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

package hardware_test

import (
	"testing"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/environment"
	"github.com/famicore/famicore/govern"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/clocks"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/memory/cartridge/mapper"
	"github.com/famicore/famicore/test"
)

// newImage creates a single bank NROM image with the program at 0x8000. The
// reset vector points to the program and the NMI vector to 0x9000
func newImage(program ...uint8) cartridge.Image {
	img := cartridge.Image{
		MapperID: mapper.NROM,
		PRGBanks: 1,
		CHRBanks: 1,
		PRG:      make([]uint8, mapper.PRGBankSize),
		CHR:      make([]uint8, mapper.CHRBankSize),
	}
	copy(img.PRG, program)
	img.PRG[0x3ffa] = 0x00
	img.PRG[0x3ffb] = 0x90
	img.PRG[0x3ffc] = 0x00
	img.PRG[0x3ffd] = 0x80
	return img
}

func newNES(t *testing.T, img cartridge.Image) *hardware.NES {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	nes, err := hardware.NewNES(env, img)
	test.DemandSuccess(t, err)
	return nes
}

func TestLoadError(t *testing.T) {
	img := newImage()
	img.MapperID = 4
	_, err := hardware.NewNES(nil, img)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridge.LoadError), true)
}

func TestResetVector(t *testing.T) {
	img := newImage()
	img.PRG[0x3ffc] = 0x34
	img.PRG[0x3ffd] = 0x92
	nes := newNES(t, img)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x9234)

	for range 100 {
		nes.Clock()
	}
	test.ExpectEquality(t, nes.Bus.Counter(), 100)

	test.DemandSuccess(t, nes.Reset())
	test.ExpectEquality(t, nes.Bus.Counter(), 0)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x9234)
	test.ExpectEquality(t, nes.PPU.Scanline, -1)
	test.ExpectEquality(t, nes.PPU.Cycle, 0)
}

func TestClockRatio(t *testing.T) {
	// LDA #1; LDA #2
	nes := newNES(t, newImage(0xa9, 0x01, 0xa9, 0x02))

	// the CPU is clocked on the first of every three bus clocks. the reset
	// sequence takes eight CPU cycles so the first instruction is fetched on
	// the twenty-fifth bus clock
	for range 24 {
		nes.Clock()
	}
	test.ExpectEquality(t, nes.CPU.InstructionCount(), 0)
	test.ExpectEquality(t, nes.PPU.Cycle, 24)

	nes.Clock()
	test.ExpectEquality(t, nes.CPU.InstructionCount(), 1)
	test.ExpectEquality(t, nes.CPU.A.Value(), 0x01)
	test.ExpectEquality(t, nes.PPU.Cycle, 25)

	// the second instruction is fetched two CPU cycles later
	for range 5 {
		nes.Clock()
	}
	test.ExpectEquality(t, nes.CPU.InstructionCount(), 1)
	nes.Clock()
	test.ExpectEquality(t, nes.CPU.InstructionCount(), 2)
	test.ExpectEquality(t, nes.CPU.A.Value(), 0x02)
}

func TestFrameTiming(t *testing.T) {
	// JMP $8000
	nes := newNES(t, newImage(0x4c, 0x00, 0x80))

	for range clocks.PPUCyclesPerFrame - 1 {
		nes.Clock()
	}
	test.ExpectEquality(t, nes.PPU.FrameComplete, false)

	nes.Clock()
	test.ExpectEquality(t, nes.PPU.FrameComplete, true)
	test.ExpectEquality(t, nes.PPU.Scanline, -1)
	test.ExpectEquality(t, nes.PPU.Cycle, 0)

	test.ExpectApproximate(t, nes.FrameRate(), 60.0988, 0.001)
}

func TestStep(t *testing.T) {
	// LDA #$10; STA $0300; illegal; LDX $0300
	nes := newNES(t, newImage(0xa9, 0x10, 0x8d, 0x00, 0x03, 0x02, 0xae, 0x00, 0x03))

	r := nes.Step()
	test.ExpectEquality(t, r.String(), "8000 LDA 10 [2]")
	r = nes.Step()
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, nes.Bus.RAM.RAM[0x0300], 0x10)

	// illegal opcodes change nothing but the program counter
	a, x, y, sp, st := nes.CPU.A, nes.CPU.X, nes.CPU.Y, nes.CPU.SP, nes.CPU.Status
	r = nes.Step()
	test.ExpectEquality(t, r.Defn.IsIllegal(), true)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, nes.CPU.A, a)
	test.ExpectEquality(t, nes.CPU.X, x)
	test.ExpectEquality(t, nes.CPU.Y, y)
	test.ExpectEquality(t, nes.CPU.SP, sp)
	test.ExpectEquality(t, nes.CPU.Status, st)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8006)

	nes.Step()
	test.ExpectEquality(t, nes.CPU.X.Value(), 0x10)
}

// program that enables NMI and loops forever. the NMI handler increments
// the byte at 0x0010
func nmiImage() cartridge.Image {
	img := newImage(
		0xa9, 0x80,       // LDA #$80
		0x8d, 0x00, 0x20, // STA $2000
		0x4c, 0x05, 0x80, // JMP $8005
	)
	copy(img.PRG[0x1000:], []uint8{
		0xe6, 0x10, // INC $10
		0x40,       // RTI
	})
	return img
}

func TestNMI(t *testing.T) {
	nes := newNES(t, nmiImage())

	var frames []int
	err := nes.RunForFrameCount(3, func(frame int) (govern.State, error) {
		if len(frames) == 0 || frames[len(frames)-1] != frame {
			frames = append(frames, frame)
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, nes.PPU.Frame, 3)
	test.ExpectEquality(t, len(frames), 4)
	test.ExpectEquality(t, nes.Bus.RAM.RAM[0x0010], 3)
}

func TestRun(t *testing.T) {
	nes := newNES(t, nmiImage())

	var count int
	err := nes.Run(func() (govern.State, error) {
		count++
		switch {
		case count < 10:
			return govern.Running, nil
		case count < 20:
			return govern.Paused, nil
		}
		return govern.Ending, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, nes.CPU.InstructionCount(), 10)

	err = nes.Run(func() (govern.State, error) {
		return govern.Initialising, nil
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, hardware.UnsupportedState), true)
}

func TestSnapshot(t *testing.T) {
	nes := newNES(t, nmiImage())
	test.DemandSuccess(t, nes.RunForFrameCount(1, nil))

	state := nes.Snapshot()
	pc := nes.CPU.PC.Address()
	counter := nes.Bus.Counter()
	nmis := nes.Bus.RAM.RAM[0x0010]

	test.DemandSuccess(t, nes.RunForFrameCount(2, nil))
	test.ExpectInequality(t, nes.Bus.RAM.RAM[0x0010], nmis)

	nes.Plumb(state)
	test.ExpectEquality(t, nes.CPU.PC.Address(), pc)
	test.ExpectEquality(t, nes.Bus.Counter(), counter)
	test.ExpectEquality(t, nes.Bus.RAM.RAM[0x0010], nmis)

	// the restored components are connected to each other and not to the
	// components that were replaced
	test.DemandSuccess(t, nes.RunForFrameCount(1, nil))
	test.ExpectEquality(t, nes.Bus.RAM.RAM[0x0010], nmis+1)

	// the stored state is not changed by the emulation
	test.ExpectEquality(t, state.Bus.RAM.RAM[0x0010], nmis)
}

func TestDump(t *testing.T) {
	nes := newNES(t, newImage())

	w, err := test.NewCappedWriter(1024)
	test.DemandSuccess(t, err)
	nes.Dump(w)
	test.ExpectInequality(t, w.String(), "")
}
