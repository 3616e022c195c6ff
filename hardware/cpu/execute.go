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
	"fmt"

	"github.com/Theomund/goomba/hardware/cpu/instructions"
	"github.com/Theomund/goomba/hardware/cpu/registers"
	"github.com/Theomund/goomba/hardware/memory/cpubus"
)

// setZN sets the zero and sign flags according to the register value.
func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// compare sets the flags as though the value had been subtracted from the
// register. the register is not changed.
func (mc *CPU) compare(r registers.Register, value uint8) {
	// maybe surprisingly, compare can be implemented with binary subtract even
	// if decimal mode is active (the meaning is the same)
	mc.Status.Carry, _ = r.Subtract(value, true)
	mc.setZN(r)
}

// branch to the operand address if flag is true. a successful branch costs an
// additional cycle and another if the target is on a different page.
func (mc *CPU) branch(flag bool, op operand) {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	mc.LastResult.Cycles++
	if op.pageCrossed {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	mc.PC.Load(op.address)
}

// execute performs the instruction on the resolved operand. the PC has
// already been advanced to the next instruction.
func (mc *CPU) execute(defn *instructions.Definition, op operand) error {
	if mc.NoFlowControl {
		switch defn.Effect {
		case instructions.Flow, instructions.Subroutine, instructions.Interrupt:
			return nil
		}
	}

	// value is the operand value for read instructions. for read-modify-write
	// instructions, the value will change during execution and be used to
	// write back to memory
	value := op.value

	var err error

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Pha:
		err = mc.push(mc.A.Value())

	case instructions.Php:
		// the break flag only ever exists in the pushed copy of the status
		// register
		err = mc.push(mc.Status.Value() | registers.Break)

	case instructions.Pla:
		value, err = mc.pull()
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Plp:
		value, err = mc.pull()
		mc.Status.Load(value)
		mc.Status.Break = false

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)

	case instructions.Txs:
		// does not affect flags
		mc.SP.Load(mc.X.Value())

	case instructions.Sta:
		err = mc.write8Bit(op.address, mc.A.Value())

	case instructions.Stx:
		err = mc.write8Bit(op.address, mc.X.Value())

	case instructions.Sty:
		err = mc.write8Bit(op.address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZN(mc.X)

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZN(mc.Y)

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZN(mc.X)

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZN(mc.Y)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(mc.Y)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.Asl:
		r := mc.shiftRegister(defn, value)
		mc.Status.Carry = r.ASL()
		mc.setZN(*r)
		value = r.Value()

	case instructions.Lsr:
		r := mc.shiftRegister(defn, value)
		mc.Status.Carry = r.LSR()
		mc.setZN(*r)
		value = r.Value()

	case instructions.Rol:
		r := mc.shiftRegister(defn, value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setZN(*r)
		value = r.Value()

	case instructions.Ror:
		r := mc.shiftRegister(defn, value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setZN(*r)
		value = r.Value()

	case instructions.Adc:
		if mc.Status.DecimalMode && !mc.NoDecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.setZN(mc.A)
		}

	case instructions.Sbc:
		if mc.Status.DecimalMode && !mc.NoDecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.setZN(mc.A)
		}

	case instructions.Inc:
		r := registers.NewRegister(value, "M")
		r.Add(1, false)
		mc.setZN(r)
		value = r.Value()

	case instructions.Dec:
		r := registers.NewRegister(value, "M")
		r.Add(0xff, false)
		mc.setZN(r)
		value = r.Value()

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		r := registers.NewRegister(value, "M")
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.Jmp:
		mc.PC.Load(op.address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, op)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, op)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, op)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, op)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, op)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, op)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, op)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, op)

	case instructions.Jsr:
		// the pushed address is the address of the last byte of the JSR
		// instruction. RTS adds one to the pulled address
		err = mc.push16(mc.PC.Address() - 1)
		if err != nil {
			return err
		}
		mc.PC.Load(op.address)

	case instructions.Rts:
		var address uint16
		address, err = mc.pull16()
		if err != nil {
			return err
		}
		mc.PC.Load(address)
		mc.PC.Add(1)

	case instructions.Brk:
		// BRK is a one byte instruction but the byte following the opcode is
		// skipped. the pushed address is therefore two bytes on from the
		// opcode
		err = mc.push16(mc.PC.Address() + 1)
		if err != nil {
			return err
		}
		err = mc.push(mc.Status.Value() | registers.Break)
		if err != nil {
			return err
		}
		mc.Status.InterruptDisable = true
		err = mc.LoadPCIndirect(cpubus.BRK)

	case instructions.Rti:
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(value)
		mc.Status.Break = false

		// unlike RTS there is no need to add one to return address
		var address uint16
		address, err = mc.pull16()
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	if err != nil {
		return err
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW && defn.AddressingMode != instructions.Accumulator {
		err = mc.write8Bit(op.address, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// shiftRegister returns the register that a shift or rotate instruction should
// work on. this is the accumulator for accumulator addressing and a temporary
// register loaded with value otherwise.
func (mc *CPU) shiftRegister(defn *instructions.Definition, value uint8) *registers.Register {
	if defn.AddressingMode == instructions.Accumulator {
		return &mc.A
	}
	r := registers.NewRegister(value, "M")
	return &r
}
