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

package registers

// AddDecimal adds value to register as if both registers are decimal
// representations (binary coded decimal). Returns new carry, zero, overflow
// and sign flags.
//
// The flags are those of the NMOS 6502. The zero flag is set from the binary
// addition, not the decimal result. The sign and overflow flags are computed
// after the low nibble has been adjusted but before the high nibble has been
// adjusted.
//
// Results for operands that are not valid BCD values are the same as for the
// real hardware.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	zero = uint8(a+b+c) == 0

	lo := (a & 0x0f) + (b & 0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	v := (a & 0xf0) + (b & 0xf0) + lo

	sign = v&0x80 == 0x80
	overflow = ^(a^b)&(a^v)&0x80 != 0

	if v >= 0xa0 {
		v += 0x60
	}

	r.value = uint8(v)

	return v >= 0x100, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as if both registers are
// decimal representations (binary coded decimal). Returns new carry, zero,
// overflow and sign flags.
//
// As with binary subtraction the carry flag is the inverse of the borrow.
//
// All flags on the NMOS 6502 are set as though the subtraction were binary.
// Only the value in the register is decimal.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	lo := (a & 0x0f) - (b & 0x0f) + c - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	v := (a & 0xf0) - (b & 0xf0) + lo
	if v < 0 {
		v -= 0x60
	}

	r.value = uint8(v & 0xff)

	return rcarry, zero, overflow, sign
}
