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

package execution

import (
	"fmt"

	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a pointer to the instruction definition for this result
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. should be the same
	// as Defn.Bytes once the result is final
	ByteCount int

	// instruction data is the operand as read from memory. for two byte
	// operands the value is little endian corrected
	InstructionData uint16

	// the effective address of the instruction, after the addressing mode
	// has been resolved
	EffectiveAddress uint16

	// the number of cycles taken by the instruction, including any extra
	// cycles
	Cycles int

	// whether the instruction crossed a page boundary and was charged for it
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// any bug encountered during execution
	CPUBug Bug

	// whether the instruction has completed all of its cycles
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}

	s := fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic())
	switch r.ByteCount {
	case 2:
		s = fmt.Sprintf("%s %02x", s, r.InstructionData)
	case 3:
		s = fmt.Sprintf("%s %04x", s, r.InstructionData)
	}
	s = fmt.Sprintf("%s [%d]", s, r.Cycles)
	if r.PageFault {
		s = fmt.Sprintf("%s page fault", s)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s (%s)", s, r.CPUBug)
	}
	return s
}
