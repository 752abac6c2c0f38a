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

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Category
}

// Mnemonic returns the assembler mnemonic of the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsIllegal returns true if the opcode is not part of the documented
// instruction set.
func (defn Definition) IsIllegal() bool {
	return defn.Operator == Illegal
}

// IllegalCycles is the cost of executing an undocumented opcode.
const IllegalCycles = 2

// Definitions is the opcode table. Every one of the 256 entries is
// populated. Opcodes not in the documented instruction set have the Illegal
// operator.
var Definitions [256]Definition

// the documented instruction set. Bytes and PageSensitive are derived from
// the addressing mode and operator
var documented = []Definition{
	{OpCode: 0x00, Operator: BRK, Cycles: 7, AddressingMode: Implied, Effect: Interrupt},
	{OpCode: 0x01, Operator: ORA, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x05, Operator: ORA, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x06, Operator: ASL, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x08, Operator: PHP, Cycles: 3, AddressingMode: Implied, Effect: Write},
	{OpCode: 0x09, Operator: ORA, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x0a, Operator: ASL, Cycles: 2, AddressingMode: Implied, Effect: RMW},
	{OpCode: 0x0d, Operator: ORA, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x0e, Operator: ASL, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x10, Operator: BPL, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x11, Operator: ORA, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x15, Operator: ORA, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x16, Operator: ASL, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x18, Operator: CLC, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x19, Operator: ORA, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x1d, Operator: ORA, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x1e, Operator: ASL, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x20, Operator: JSR, Cycles: 6, AddressingMode: Absolute, Effect: Subroutine},
	{OpCode: 0x21, Operator: AND, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x24, Operator: BIT, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x25, Operator: AND, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x26, Operator: ROL, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x28, Operator: PLP, Cycles: 4, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x29, Operator: AND, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x2a, Operator: ROL, Cycles: 2, AddressingMode: Implied, Effect: RMW},
	{OpCode: 0x2c, Operator: BIT, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x2d, Operator: AND, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x2e, Operator: ROL, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x30, Operator: BMI, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x31, Operator: AND, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x35, Operator: AND, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x36, Operator: ROL, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x38, Operator: SEC, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x39, Operator: AND, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x3d, Operator: AND, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x3e, Operator: ROL, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x40, Operator: RTI, Cycles: 6, AddressingMode: Implied, Effect: Interrupt},
	{OpCode: 0x41, Operator: EOR, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x45, Operator: EOR, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x46, Operator: LSR, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x48, Operator: PHA, Cycles: 3, AddressingMode: Implied, Effect: Write},
	{OpCode: 0x49, Operator: EOR, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x4a, Operator: LSR, Cycles: 2, AddressingMode: Implied, Effect: RMW},
	{OpCode: 0x4c, Operator: JMP, Cycles: 3, AddressingMode: Absolute, Effect: Flow},
	{OpCode: 0x4d, Operator: EOR, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x4e, Operator: LSR, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x50, Operator: BVC, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x51, Operator: EOR, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x55, Operator: EOR, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x56, Operator: LSR, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x58, Operator: CLI, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x59, Operator: EOR, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x5d, Operator: EOR, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x5e, Operator: LSR, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x60, Operator: RTS, Cycles: 6, AddressingMode: Implied, Effect: Subroutine},
	{OpCode: 0x61, Operator: ADC, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x65, Operator: ADC, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x66, Operator: ROR, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x68, Operator: PLA, Cycles: 4, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x69, Operator: ADC, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x6a, Operator: ROR, Cycles: 2, AddressingMode: Implied, Effect: RMW},
	{OpCode: 0x6c, Operator: JMP, Cycles: 5, AddressingMode: Indirect, Effect: Flow},
	{OpCode: 0x6d, Operator: ADC, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x6e, Operator: ROR, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x70, Operator: BVS, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x71, Operator: ADC, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x75, Operator: ADC, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x76, Operator: ROR, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x78, Operator: SEI, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x79, Operator: ADC, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x7d, Operator: ADC, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x7e, Operator: ROR, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x81, Operator: STA, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write},
	{OpCode: 0x84, Operator: STY, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x85, Operator: STA, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x86, Operator: STX, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x88, Operator: DEY, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8a, Operator: TXA, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8c, Operator: STY, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x8d, Operator: STA, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x8e, Operator: STX, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x90, Operator: BCC, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x91, Operator: STA, Cycles: 6, AddressingMode: IndirectIndexed, Effect: Write},
	{OpCode: 0x94, Operator: STY, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	{OpCode: 0x95, Operator: STA, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	{OpCode: 0x96, Operator: STX, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write},
	{OpCode: 0x98, Operator: TYA, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x99, Operator: STA, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write},
	{OpCode: 0x9a, Operator: TXS, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x9d, Operator: STA, Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write},
	{OpCode: 0xa0, Operator: LDY, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa1, Operator: LDA, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xa2, Operator: LDX, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa4, Operator: LDY, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa5, Operator: LDA, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa6, Operator: LDX, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa8, Operator: TAY, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa9, Operator: LDA, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xaa, Operator: TAX, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xac, Operator: LDY, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xad, Operator: LDA, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xae, Operator: LDX, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xb0, Operator: BCS, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xb1, Operator: LDA, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0xb4, Operator: LDY, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xb5, Operator: LDA, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xb6, Operator: LDX, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Read},
	{OpCode: 0xb8, Operator: CLV, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xb9, Operator: LDA, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xba, Operator: TSX, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xbc, Operator: LDY, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xbd, Operator: LDA, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xbe, Operator: LDX, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xc0, Operator: CPY, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xc1, Operator: CMP, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xc4, Operator: CPY, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xc5, Operator: CMP, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xc6, Operator: DEC, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xc8, Operator: INY, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xc9, Operator: CMP, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xca, Operator: DEX, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xcc, Operator: CPY, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xcd, Operator: CMP, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xce, Operator: DEC, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0xd0, Operator: BNE, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xd1, Operator: CMP, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0xd5, Operator: CMP, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xd6, Operator: DEC, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0xd8, Operator: CLD, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd9, Operator: CMP, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xdd, Operator: CMP, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xde, Operator: DEC, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0xe0, Operator: CPX, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xe1, Operator: SBC, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xe4, Operator: CPX, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xe5, Operator: SBC, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xe6, Operator: INC, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xe8, Operator: INX, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xe9, Operator: SBC, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xea, Operator: NOP, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xec, Operator: CPX, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xed, Operator: SBC, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xee, Operator: INC, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0xf0, Operator: BEQ, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xf1, Operator: SBC, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0xf5, Operator: SBC, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xf6, Operator: INC, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0xf8, Operator: SED, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf9, Operator: SBC, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xfd, Operator: SBC, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xfe, Operator: INC, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
}

func init() {
	for i := range Definitions {
		Definitions[i] = Definition{
			OpCode:         uint8(i),
			Operator:       Illegal,
			Bytes:          1,
			Cycles:         IllegalCycles,
			AddressingMode: Implied,
			Effect:         Read,
		}
	}

	for _, defn := range documented {
		defn.Bytes = defn.AddressingMode.Bytes()
		defn.PageSensitive = defn.AddressingMode.CanCrossPage() && defn.Operator.HonoursPageCross()

		// the byte following BRK is skipped by the CPU and is part of the
		// instruction for the purposes of decoding
		if defn.Operator == BRK {
			defn.Bytes = 2
		}
		Definitions[defn.OpCode] = defn
	}
}
