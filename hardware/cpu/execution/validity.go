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
	"github.com/famicore/famicore/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if r.Defn == nil {
		return curated.Errorf("execution: no instruction definition")
	}

	if !r.Final {
		return curated.Errorf("execution: not finalised")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		if !r.Defn.IsBranch() {
			return curated.Errorf("execution: unexpected page fault for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic())
		}
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("execution: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.IsBranch() {
		expected := r.Defn.Cycles
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		}
		if r.Cycles != expected {
			return curated.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Mnemonic(), r.Cycles, expected)
		}
		return nil
	}

	expected := r.Defn.Cycles
	if r.PageFault {
		expected++
	}
	if r.Cycles != expected {
		return curated.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Mnemonic(), r.Cycles, expected)
	}

	return nil
}
