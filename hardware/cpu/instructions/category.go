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

package instructions

// Category groups instructions by what they do to memory and to the flow of
// the program.
type Category int

// List of instruction categories.
const (
	// the instruction reads from memory or affects registers only
	Read Category = iota

	// the instruction writes to memory without reading it first
	Write

	// read-modify-write instructions read a value, change it and write it
	// back to the same address
	RMW

	// branches and JMP. branches can be told apart by the Relative
	// addressing mode
	Flow

	// JSR and RTS
	Subroutine

	// BRK and RTI
	Interrupt
)

var categoryNames = [...]string{"Read", "Write", "RMW", "Flow", "Subroutine", "Interrupt"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown category"
	}
	return categoryNames[c]
}

// ChangesFlow returns true if instructions in the category can load the
// program counter with something other than the next instruction.
func (c Category) ChangesFlow() bool {
	return c == Flow || c == Subroutine || c == Interrupt
}
