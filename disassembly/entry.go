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
	"strings"

	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// Entry is a single disassembled instruction.
type Entry struct {
	// the address of the opcode
	Address uint16

	// the opcode and the operand bytes
	Bytes []uint8

	Defn *instructions.Definition

	// the operand as a little-endian corrected value. not defined for
	// instructions that have no operand
	Operand uint16
}

// Disassemble decodes the instruction at the address.
func Disassemble(mem cpubus.Memory, address uint16) Entry {
	e := Entry{
		Address: address,
	}

	opcode := mem.Read(address, true)
	e.Defn = &instructions.Definitions[opcode]
	e.Bytes = append(e.Bytes, opcode)

	for i := 1; i < e.Defn.Bytes; i++ {
		b := mem.Read(address+uint16(i), true)
		e.Bytes = append(e.Bytes, b)
		e.Operand |= uint16(b) << (8 * (i - 1))
	}

	return e
}

// Range disassembles count instructions beginning at the address.
func Range(mem cpubus.Memory, address uint16, count int) []Entry {
	entries := make([]Entry, 0, count)
	for range count {
		e := Disassemble(mem, address)
		entries = append(entries, e)
		address += uint16(len(e.Bytes))
	}
	return entries
}

// Next returns the address of the instruction following the entry.
func (e Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytes))
}

func (e Entry) String() string {
	s := fmt.Sprintf("%04x %s", e.Address, e.Mnemonic())
	if op := e.OperandString(); op != "" {
		s = fmt.Sprintf("%s %s", s, op)
	}
	return s
}

// Bytecode returns the bytes of the instruction as a hex string.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

// Mnemonic returns the mnemonic of the instruction.
func (e Entry) Mnemonic() string {
	return e.Defn.Mnemonic()
}

// OperandString returns the operand in conventional 6502 notation. The
// operand of a branch instruction is shown as the branch destination.
func (e Entry) OperandString() string {
	switch e.Defn.AddressingMode {
	case instructions.Implied:
		switch e.Defn.Operator {
		case instructions.ASL, instructions.LSR, instructions.ROL, instructions.ROR:
			return "A"
		}
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", e.Operand)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", e.Next()+uint16(int8(e.Operand)))
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", e.Operand)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", e.Operand)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", e.Operand)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", e.Operand)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", e.Operand)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", e.Operand)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", e.Operand)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", e.Operand)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", e.Operand)
	}
	return ""
}
