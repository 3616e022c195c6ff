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

package execution

import (
	"fmt"
	"strings"

	"github.com/Theomund/goomba/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// address of the opcode
	Address uint16

	// a reference to the instruction definition. will be nil if the result
	// describes an interrupt
	Defn *instructions.Definition

	// the raw operand bytes of the instruction. for two byte instructions only
	// the low byte is used
	InstructionData uint16

	// the number of bytes read while decoding the instruction. when
	// finalised this will be the same as Defn.Bytes
	ByteCount int

	// the number of cycles consumed by the instruction, including any page
	// and branch penalties
	Cycles int

	// whether the effective address crossed a page boundary. for branches
	// this means the branch target is on a different page to the next
	// instruction
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// any quirk triggered by the instruction
	CPUBug Bug

	// the interrupt serviced instead of an instruction
	Interrupt Interrupt

	// error string. errors from the memory implementation that do not stop
	// execution are noted here
	Error string

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// operand returns the assembler notation for the instruction's operand.
func (r Result) operand() string {
	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		target := r.Address + 2 + uint16(int8(r.InstructionData))
		return fmt.Sprintf("$%04x", target)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	}
	return ""
}

func (r Result) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "$%04x ", r.Address)

	switch {
	case r.Interrupt != NoInterrupt:
		s.WriteString(r.Interrupt.String())
	case r.Defn == nil:
		s.WriteString("undecoded instruction")
		return s.String()
	case r.Defn.IsIllegal():
		fmt.Fprintf(&s, "%s ($%02x)", r.Defn.Operator, r.Defn.OpCode)
		return s.String()
	default:
		s.WriteString(r.Defn.Operator.String())
		if o := r.operand(); o != "" {
			s.WriteRune(' ')
			s.WriteString(o)
		}
	}

	fmt.Fprintf(&s, " (%d cycles)", r.Cycles)

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		fmt.Fprintf(&s, " * %s *", r.CPUBug)
	}
	if r.Error != "" {
		fmt.Fprintf(&s, " ! %s", r.Error)
	}

	return s.String()
}
