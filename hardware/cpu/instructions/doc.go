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

// Package instructions defines the 6502 instruction set. Every one of the
// 256 possible opcodes has a Definition, describing the operator, addressing
// mode, length in bytes and base cycle count of the instruction.
//
// The definitions table in table.go is generated from instructions.csv by the
// program in the generator directory.
package instructions
