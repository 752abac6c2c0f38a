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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// ColumnAttr controls what is included in the output of Write().
type ColumnAttr struct {
	ByteCode bool
	Cycles   bool
}

// the width of the bytecode column is the width of three bytes
const bytecodeWidth = 8

// Write the entries to the io.Writer in columns, one entry per line.
func Write(w io.Writer, entries []Entry, attr ColumnAttr) error {
	// width of the operand column is the width of the widest operand
	var operandWidth int
	for _, e := range entries {
		if n := len(e.OperandString()); n > operandWidth {
			operandWidth = n
		}
	}

	for _, e := range entries {
		s := fmt.Sprintf("%04x ", e.Address)
		if attr.ByteCode {
			s = fmt.Sprintf("%s%-*s ", s, bytecodeWidth, e.Bytecode())
		}
		s = fmt.Sprintf("%s%s %-*s", s, e.Mnemonic(), operandWidth, e.OperandString())
		if attr.Cycles {
			s = fmt.Sprintf("%s %d", s, e.Defn.Cycles)
			if e.Defn.PageSensitive {
				s = fmt.Sprintf("%s*", s)
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(s, " ")); err != nil {
			return err
		}
	}

	return nil
}
