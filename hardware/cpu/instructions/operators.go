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

// Operator identifies the operation performed by an instruction. The CPU
// interprets each operator in a single switch statement.
type Operator int

// List of operators. The documented 6502 instruction set plus Illegal, which
// stands in for every undocumented opcode.
const (
	Illegal Operator = iota
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

var mnemonics = [...]string{
	Illegal: "???",
	ADC:     "ADC",
	AND:     "AND",
	ASL:     "ASL",
	BCC:     "BCC",
	BCS:     "BCS",
	BEQ:     "BEQ",
	BIT:     "BIT",
	BMI:     "BMI",
	BNE:     "BNE",
	BPL:     "BPL",
	BRK:     "BRK",
	BVC:     "BVC",
	BVS:     "BVS",
	CLC:     "CLC",
	CLD:     "CLD",
	CLI:     "CLI",
	CLV:     "CLV",
	CMP:     "CMP",
	CPX:     "CPX",
	CPY:     "CPY",
	DEC:     "DEC",
	DEX:     "DEX",
	DEY:     "DEY",
	EOR:     "EOR",
	INC:     "INC",
	INX:     "INX",
	INY:     "INY",
	JMP:     "JMP",
	JSR:     "JSR",
	LDA:     "LDA",
	LDX:     "LDX",
	LDY:     "LDY",
	LSR:     "LSR",
	NOP:     "NOP",
	ORA:     "ORA",
	PHA:     "PHA",
	PHP:     "PHP",
	PLA:     "PLA",
	PLP:     "PLP",
	ROL:     "ROL",
	ROR:     "ROR",
	RTI:     "RTI",
	RTS:     "RTS",
	SBC:     "SBC",
	SEC:     "SEC",
	SED:     "SED",
	SEI:     "SEI",
	STA:     "STA",
	STX:     "STX",
	STY:     "STY",
	TAX:     "TAX",
	TAY:     "TAY",
	TSX:     "TSX",
	TXA:     "TXA",
	TXS:     "TXS",
	TYA:     "TYA",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(mnemonics) {
		return "???"
	}
	return mnemonics[op]
}

// HonoursPageCross returns true if the operator is charged an extra cycle
// when its addressing mode crosses a page boundary. Only operators that read
// their operand without writing it back are charged.
func (op Operator) HonoursPageCross() bool {
	switch op {
	case ADC, AND, CMP, EOR, LDA, LDX, LDY, ORA, SBC:
		return true
	}
	return false
}
