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

package cpu

// the stack occupies page one of memory. the stack pointer wraps within the
// page, so pushing with SP at 0x00 writes 0x0100 and leaves SP at 0xff.

// push writes the value at the current stack address and then decrements the
// stack pointer.
func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value)
	mc.SP.Decrement()
	return err
}

// pull increments the stack pointer and then reads the value at the new stack
// address.
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Increment()
	return mc.read8Bit(mc.SP.Address())
}

// push16 pushes the high byte and then the low byte.
func (mc *CPU) push16(value uint16) error {
	err := mc.push(uint8(value >> 8))
	if err != nil {
		return err
	}
	return mc.push(uint8(value))
}

// pull16 pulls the low byte and then the high byte.
func (mc *CPU) pull16() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}
