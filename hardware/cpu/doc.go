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

// Package cpu emulates the MOS 6502 microprocessor. Like all 8-bit processors
// of the era, the 6502 executes instructions according to the single byte
// value read from an address pointed to by the program counter. This single
// byte is the opcode and is looked up in the instruction table. The
// instruction definition for that opcode is then used to move execution of the
// program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument to NewCPU(). The interface defines the memory operations
// required by the CPU. See the cpubus package for details.
//
// The bread-and-butter of the CPU type is the Step() function, which executes
// exactly one instruction and returns an execution.Result describing it.
//
//	mc := cpu.NewCPU(mem)
//	if err := mc.Reset(); err != nil {
//		return err
//	}
//
//	for {
//		r, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		numCycles += r.Cycles
//	}
//
// ExecuteInstruction() is an alternative to Step() that calls a callback
// function once for every cycle consumed by the instruction. This is useful
// for driving other hardware at the CPU's pace.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed. See the execution package for more information. Very useful for
// debuggers.
//
// The NoFlowControl flag prevents the CPU from honouring "flow control"
// instructions (ie. JMP, BNE, JSR, BRK, etc.). Execution continues with the
// next instruction in memory, which is useful for linear disassembly.
//
// The NoDecimalMode flag causes ADC and SBC to ignore the decimal mode flag.
// Variants of the 6502, like the 2A03, have no decimal mode.
//
// Illegal opcodes are reported as an error wrapping IllegalOpcode. The state
// of the CPU is left unchanged, with the PC pointing at the illegal opcode.
package cpu
