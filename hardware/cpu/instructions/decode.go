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

//go:generate go run ./generator

// Decode returns the definition for the opcode. Every opcode has a
// definition; opcodes the 6502 does not define are reported with the Illegal
// operator.
//
// The returned definition is shared and must not be modified.
func Decode(opcode uint8) *Definition {
	return &table[opcode]
}

// Definitions returns a copy of the complete table of definitions, indexed
// by opcode.
func Definitions() []Definition {
	defs := make([]Definition, len(table))
	copy(defs, table[:])
	return defs
}
