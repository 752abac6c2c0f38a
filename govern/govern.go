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

// Package govern defines the states an emulation can be in. A driving loop
// (for example, NES.Run()) asks a callback function for the next state after
// every instruction.
package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
const (
	// the state of an emulation that has been created but not yet run. an
	// emulation never returns to this state once it has started
	Initialising State = iota

	// the emulation is not advancing but the driving loop continues to ask
	// for the next state
	Paused

	// the emulation advances one instruction between every state check
	Running

	// the driving loop returns
	Ending
)

var stateNames = [...]string{"Initialising", "Paused", "Running", "Ending"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}
