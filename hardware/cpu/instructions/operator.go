// This file is part of goomba.
//
// goomba is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// goomba is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with goomba.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import "strings"

// Operator identifies the operation performed by an instruction. Several
// opcodes share an Operator, differing only in addressing mode.
type Operator int

// List of operators. The zero value is Illegal.
const (
	Illegal Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	numOperators
)

var mnemonics = [numOperators]string{
	"???",
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI",
	"BNE", "BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI",
	"CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR",
	"INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX", "LDY",
	"LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA",
	"STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

// String returns the three letter mnemonic for the operator.
func (op Operator) String() string {
	if op < 0 || op >= numOperators {
		return mnemonics[Illegal]
	}
	return mnemonics[op]
}

// LookupOperator returns the Operator for the mnemonic. Case is ignored. The
// Illegal operator cannot be looked up.
func LookupOperator(mnemonic string) (Operator, bool) {
	mnemonic = strings.ToUpper(strings.TrimSpace(mnemonic))
	for op := Adc; op < numOperators; op++ {
		if mnemonics[op] == mnemonic {
			return op, true
		}
	}
	return Illegal, false
}

// Operators returns every legal operator, in mnemonic order.
func Operators() []Operator {
	ops := make([]Operator, 0, numOperators-1)
	for op := Adc; op < numOperators; op++ {
		ops = append(ops, op)
	}
	return ops
}
