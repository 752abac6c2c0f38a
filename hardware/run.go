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
	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/govern"
)

// UnsupportedState is returned by Run() when the continue check returns a
// state that the function can not handle.
const UnsupportedState = "nes: unsupported emulation state (%s) in Run() function"

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and returns the state the
// emulation should be in. The function returns when the state is Ending.
//
// A nil continueCheck function will run the emulation forever.
func (nes *NES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			nes.Step()
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. The continueCheck function is called after every instruction with
// the current frame number.
func (nes *NES) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := nes.PPU.Frame + numFrames

	var err error

	state := govern.Running
	for nes.PPU.Frame < targetFrame && state != govern.Ending {
		nes.Step()

		state, err = continueCheck(nes.PPU.Frame)
		if err != nil {
			return err
		}
	}

	return nil
}
