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
	"errors"
	"fmt"

	"github.com/Theomund/goomba/hardware/cpu/execution"
	"github.com/Theomund/goomba/hardware/cpu/instructions"
	"github.com/Theomund/goomba/hardware/cpu/registers"
	"github.com/Theomund/goomba/hardware/memory/cpubus"
	"github.com/Theomund/goomba/logger"
)

// the value of the stack pointer after a reset
const resetSP = uint8(0xfd)

// CPU implements the MOS 6502. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem cpubus.Memory

	// last result. updated by every call to Step() and by a successful
	// Interrupt()
	LastResult execution.Result

	// NoFlowControl sets whether the cpu responds accurately to instructions
	// that affect the flow of the program (branches, JMP, subroutines and
	// interrupts). when true these instructions do nothing except advance the
	// PC to the next instruction
	NoFlowControl bool

	// NoDecimalMode causes ADC and SBC to always use binary arithmetic,
	// regardless of the decimal mode flag
	NoDecimalMode bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// registers are set to their reset values but the PC is zero. Use Reset() to
// load the PC from the reset vector or LoadPC() to start from a known address.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(resetSP),
		Status: registers.NewStatusRegister(),
	}
	mc.Status.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy refers to
// the same memory.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC from the reset vector.
// Memory is not touched.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(resetSP)
	mc.Status.Reset()

	// not touching NoFlowControl or NoDecimalMode

	return mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	address, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// read8Bit returns 8bit value from the specified address. errors wrapping
// cpubus.AddressError are noted in LastResult and are not returned.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val, err := mc.mem.Read(address)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return 0, err
		}
		mc.LastResult.Error = err.Error()
	}
	return val, nil
}

// read16Bit returns the little-endian 16bit value from the specified address.
// the address of the high byte wraps at the top of memory.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8Bit(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// write8Bit writes 8 bits to the specified address. errors wrapping
// cpubus.AddressError are noted in LastResult and are not returned.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	err := mc.mem.Write(address, value)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}
	return nil
}

// IllegalOpcode is the sentinel error returned by Step() when the opcode at
// the PC is not defined by the 6502.
var IllegalOpcode = errors.New("cpu: illegal opcode")

// Step executes exactly one instruction. The basic process is this:
//
//  1. read opcode and look up instruction definition
//  2. resolve the operand according to the addressing mode of the instruction
//  3. advance the PC by the length of the instruction
//  4. using the operator as a guide, perform the instruction on the data
//
// Instructions that affect program flow load the PC during step 4.
//
// The returned Result is a copy of LastResult. If the opcode is illegal then
// the returned error wraps IllegalOpcode and the PC is not advanced.
func (mc *CPU) Step() (execution.Result, error) {
	// prepare new round of results
	mc.LastResult.Reset()
	pc := mc.PC.Address()
	mc.LastResult.Address = pc

	opcode, err := mc.read8Bit(pc)
	if err != nil {
		return mc.LastResult, err
	}
	mc.LastResult.ByteCount = 1

	defn := instructions.Decode(opcode)
	mc.LastResult.Defn = defn

	if defn.IsIllegal() {
		mc.LastResult.Final = true
		logger.Logf(logger.Allow, "CPU", "illegal opcode %#02x at %#04x", opcode, pc)
		return mc.LastResult, fmt.Errorf("%w (%#02x) at %#04x", IllegalOpcode, opcode, pc)
	}

	op, err := mc.resolve(defn, pc)
	if err != nil {
		return mc.LastResult, err
	}

	mc.LastResult.ByteCount = op.bytes
	mc.LastResult.InstructionData = op.data
	mc.LastResult.Cycles = defn.Cycles

	// the page penalty for branches is decided by the branch itself
	if defn.PageSensitive && op.pageCrossed {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	mc.PC.Load(pc + uint16(defn.Bytes))

	err = mc.execute(defn, op)
	if err != nil {
		return mc.LastResult, err
	}

	mc.LastResult.Final = true

	return mc.LastResult, nil
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps the CPU forward one instruction and then calls the
// cycleCallback function once for every cycle consumed by the instruction.
// Errors from the callback stop the sequence of calls and are returned.
//
// The cycleCallback argument should never be nil. Use the NilCycleCallback()
// function in this package if you want a nil effect.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	r, err := mc.Step()
	if err != nil {
		return err
	}

	for range r.Cycles {
		err = cycleCallback()
		if err != nil {
			return err
		}
	}

	return nil
}

// Interrupt services a hardware interrupt. A maskable interrupt (IRQ) is
// ignored if the interrupt disable flag is set. A non-maskable interrupt (NMI)
// is always serviced.
//
// Servicing an interrupt pushes the PC and the status register (with the
// break flag clear) onto the stack, sets the interrupt disable flag and loads
// the PC from the appropriate vector. LastResult is updated only if the
// interrupt is serviced.
func (mc *CPU) Interrupt(nmi bool) error {
	if !nmi && mc.Status.InterruptDisable {
		return nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	vector := cpubus.IRQ
	mc.LastResult.Interrupt = execution.IRQ
	if nmi {
		vector = cpubus.NMI
		mc.LastResult.Interrupt = execution.NMI
	}

	err := mc.push16(mc.PC.Address())
	if err != nil {
		return err
	}
	err = mc.push(mc.Status.Value() &^ registers.Break)
	if err != nil {
		return err
	}
	mc.Status.InterruptDisable = true

	err = mc.LoadPCIndirect(vector)
	if err != nil {
		return err
	}

	mc.LastResult.Cycles = execution.InterruptCycles
	mc.LastResult.Final = true

	logger.Logf(logger.Allow, "CPU", "%s serviced at %#04x", mc.LastResult.Interrupt, mc.LastResult.Address)

	return nil
}

// IsTrapped returns true if the last instruction left the PC unchanged. This
// is a branch or jump to itself and is the usual way for test programs to
// signal that they have finished.
func (mc *CPU) IsTrapped() bool {
	if !mc.LastResult.Final || mc.LastResult.Defn == nil || mc.LastResult.Defn.IsIllegal() {
		return false
	}
	return mc.PC.Address() == mc.LastResult.Address
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. The memory implementation must satisfy cpubus.Peeker.
func (mc *CPU) PredictRTS() (uint16, bool) {
	predict, ok := mc.mem.(cpubus.Peeker)
	if !ok {
		return 0, false
	}

	sp := mc.SP.Value()

	lo, err := predict.Peek(cpubus.StackPage | uint16(sp+1))
	if err != nil {
		return 0, false
	}

	hi, err := predict.Peek(cpubus.StackPage | uint16(sp+2))
	if err != nil {
		return 0, false
	}

	return ((uint16(hi) << 8) | uint16(lo)) + 1, true
}
