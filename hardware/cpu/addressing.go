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

import (
	"github.com/Theomund/goomba/hardware/cpu/execution"
	"github.com/Theomund/goomba/hardware/cpu/instructions"
)

// operand is the resolved operand of an instruction.
type operand struct {
	// the effective address. for immediate mode this is the address of the
	// operand byte and for relative mode it is the branch target
	address uint16

	// the value at the effective address, the accumulator or the immediate
	// value. only read for instructions that make use of it
	value uint8

	// the operand bytes as read from the program
	data uint16

	// number of bytes consumed, including the opcode
	bytes int

	// whether indexing crossed a page boundary. for relative mode, whether
	// the branch target is on a different page to the next instruction
	pageCrossed bool
}

// resolve the operand for the instruction at pc. the PC register is not
// changed.
func (mc *CPU) resolve(defn *instructions.Definition, pc uint16) (operand, error) {
	op := operand{bytes: defn.Bytes}
	next := pc + uint16(defn.Bytes)

	var err error

	switch defn.Bytes {
	case 2:
		var lo uint8
		lo, err = mc.read8Bit(pc + 1)
		op.data = uint16(lo)
	case 3:
		op.data, err = mc.read16Bit(pc + 1)
	}
	if err != nil {
		return op, err
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		return op, nil

	case instructions.Accumulator:
		op.value = mc.A.Value()
		return op, nil

	case instructions.Immediate:
		op.address = pc + 1
		op.value = uint8(op.data)
		return op, nil

	case instructions.Relative:
		// the displacement is signed and relative to the next instruction
		op.address = next + uint16(int8(op.data))
		op.pageCrossed = op.address&0xff00 != next&0xff00
		return op, nil

	case instructions.Absolute, instructions.ZeroPage:
		op.address = op.data

	case instructions.ZeroPageIndexedX:
		op.address = mc.indexZeroPage(uint8(op.data), mc.X.Value())

	case instructions.ZeroPageIndexedY:
		op.address = mc.indexZeroPage(uint8(op.data), mc.Y.Value())

	case instructions.AbsoluteIndexedX:
		op.address, op.pageCrossed = indexAbsolute(op.data, mc.X.Value())

	case instructions.AbsoluteIndexedY:
		op.address, op.pageCrossed = indexAbsolute(op.data, mc.Y.Value())

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command. the high byte of the pointer is not incremented when
		// reading the high byte of the address
		if op.data&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

		var lo, hi uint8
		lo, err = mc.read8Bit(op.data)
		if err != nil {
			return op, err
		}
		hi, err = mc.read8Bit(op.data&0xff00 | (op.data+1)&0x00ff)
		if err != nil {
			return op, err
		}
		op.address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		op.address, err = mc.readZeroPagePointer(uint8(op.data) + mc.X.Value())
		if err != nil {
			return op, err
		}

	case instructions.IndirectIndexed:
		var base uint16
		base, err = mc.readZeroPagePointer(uint8(op.data))
		if err != nil {
			return op, err
		}
		op.address, op.pageCrossed = indexAbsolute(base, mc.Y.Value())
	}

	// only instructions that make use of the value read it. stores and jumps
	// never touch the effective address
	if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
		op.value, err = mc.read8Bit(op.address)
		if err != nil {
			return op, err
		}
	}

	return op, nil
}

// indexZeroPage adds the index to the zero page address. the result wraps
// within the zero page.
func (mc *CPU) indexZeroPage(base uint8, index uint8) uint16 {
	if uint16(base)+uint16(index) > 0xff {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}
	return uint16(base + index)
}

// indexAbsolute adds the index to the address, wrapping at the top of memory.
// also returns whether a page boundary was crossed.
func indexAbsolute(base uint16, index uint8) (uint16, bool) {
	address := base + uint16(index)
	return address, address&0xff00 != base&0xff00
}

// readZeroPagePointer reads a 16bit pointer from the zero page. the high byte
// of the pointer is read from the start of the zero page if the pointer is at
// the end of the zero page.
func (mc *CPU) readZeroPagePointer(pointer uint8) (uint16, error) {
	if pointer == 0xff {
		mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
	}

	lo, err := mc.read8Bit(uint16(pointer))
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8Bit(uint16(pointer + 1))
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}
