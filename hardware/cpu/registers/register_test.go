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

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)

	// addtion boundary
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), 0)

	// addition boundary with carry
	r8.Load(254)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), 0)

	// addition boundary with carry
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectFailure(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), 1)

	// adding zero with carry in from 0xff is a carry but not zero
	r8.Load(0xff)
	carry, _ = r8.Add(0, true)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, r8.Value(), 0)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	r8.Load(1)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 255)
	r8.Load(1)
	r8.Subtract(2, true)
	test.ExpectEquality(t, r8.Value(), 255)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x1)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectFailure(t, carry)
	carry = r8.LSR()
	test.ExpectSuccess(t, carry)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectFailure(t, carry)
}

func TestOverflow(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0x50, "A")
	carry, overflow = r8.Add(0x50, false)
	test.ExpectEquality(t, r8.Value(), 0xa0)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, r8.IsNegative())

	r8.Load(0xd0)
	carry, overflow = r8.Add(0x90, false)
	test.ExpectEquality(t, r8.Value(), 0x60)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, overflow)

	r8.Load(0x50)
	carry, overflow = r8.Subtract(0xb0, true)
	test.ExpectEquality(t, r8.Value(), 0xa0)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)
}

func TestSubtractCarry(t *testing.T) {
	// carry is set exactly when register >= operand
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			r8 := registers.NewRegister(uint8(a), "A")
			carry, _ := r8.Subtract(uint8(b), true)
			if carry != (a >= b) {
				t.Fatalf("carry for %02x - %02x is %v", a, b, carry)
			}
			test.DemandEquality(t, r8.Value(), uint8(a-b))
		}
	}
}

func TestProgramCounter(t *testing.T) {
	// initialisation
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	// loading & addition
	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 129)

	// wrap around top of memory
	pc.Load(0xffff)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 0x0001)
	test.ExpectEquality(t, pc.String(), "0001")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x00)
	test.ExpectEquality(t, sp.Address(), 0x0100)

	// decrement from bottom of stack wraps to the top of page one
	sp.Decrement()
	test.ExpectEquality(t, sp.Value(), 0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)

	// and increment from the top wraps to the bottom
	sp.Increment()
	test.ExpectEquality(t, sp.Value(), 0x00)
	test.ExpectEquality(t, sp.Address(), 0x0100)
}
