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

package registers_test

import (
	"testing"

	"github.com/Theomund/goomba/hardware/cpu/registers"
	"github.com/Theomund/goomba/test"
)

func TestDecimalModeCarry(t *testing.T) {
	var rcarry bool

	// initialisation
	r8 := registers.NewRegister(0, "test")

	// addition without carry
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x01)
	test.ExpectFailure(t, rcarry)

	// addition with carry
	rcarry, _, _, _ = r8.AddDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x03)
	test.ExpectFailure(t, rcarry)

	// subtraction with carry (subtract value)
	r8.Load(9)
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x08)

	// subtraction without carry (subtract value and another 1)
	r8.SubtractDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x06)

	// addition on tens boundary
	r8.Load(9)
	r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x10)

	// subtraction on tens boundary
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x09)

	// addition on hundreds boundary
	r8.Load(0x99)
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, rcarry)

	// subtraction on hundreds boundary
	rcarry, _, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectFailure(t, rcarry)

	// larger values
	r8.Load(0x58)
	rcarry, _, _, _ = r8.AddDecimal(0x46, true)
	test.ExpectEquality(t, r8.Value(), 0x05)
	test.ExpectSuccess(t, rcarry)

	r8.Load(0x46)
	rcarry, _, _, _ = r8.SubtractDecimal(0x12, true)
	test.ExpectEquality(t, r8.Value(), 0x34)
	test.ExpectSuccess(t, rcarry)

	r8.Load(0x12)
	rcarry, _, _, _ = r8.SubtractDecimal(0x21, true)
	test.ExpectEquality(t, r8.Value(), 0x91)
	test.ExpectFailure(t, rcarry)
}

func TestDecimalModeZero(t *testing.T) {
	var zero bool

	// initialisation
	r8 := registers.NewRegister(0, "test")

	// subtract to zero
	r8.Load(0x02)
	_, zero, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectFailure(t, zero)
	_, zero, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectSuccess(t, zero)
}

func TestDecimalModeInvalid(t *testing.T) {
	var rcarry, rzero bool

	// the zero flag is from the binary result (0x9a) not the decimal result
	r8 := registers.NewRegister(0x99, "test")
	rcarry, rzero, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, rcarry)
	test.ExpectFailure(t, rzero)
}

func TestDecimalModeSignOverflow(t *testing.T) {
	var overflow, sign bool

	// 0x79 + 0x00 + carry = 0x80. sign and overflow are from the result
	// before the high nibble is adjusted
	r8 := registers.NewRegister(0x79, "test")
	_, _, overflow, sign = r8.AddDecimal(0x00, true)
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, sign)
}
