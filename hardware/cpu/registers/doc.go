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

// Package registers implements the three types of register found in the 6502:
// the 8bit general purpose registers (A, X and Y); the 8bit stack pointer; the
// 16bit program counter; and the status register.
//
// The Register type implements the arithmetic, logical and shift operations
// used by the CPU instructions. The operations return the carry and overflow
// conditions so that the CPU can update the status register. Zero and sign
// (negative) conditions can be tested with the IsZero() and IsNegative()
// functions.
//
// All arithmetic wraps. There are no error conditions in this package.
//
// Decimal mode arithmetic is implemented by AddDecimal() and
// SubtractDecimal(). The flag results are those of the NMOS 6502, which are
// not always intuitive. See the function documentation for details.
package registers
