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
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised")
	}

	if r.Interrupt != NoInterrupt {
		if r.Cycles != InterruptCycles {
			return fmt.Errorf("cpu: number of cycles wrong for %s (%d instead of %d)", r.Interrupt, r.Cycles, InterruptCycles)
		}
		return nil
	}

	if r.Defn == nil {
		return fmt.Errorf("cpu: execution has no instruction definition")
	}

	if r.Defn.IsIllegal() {
		return fmt.Errorf("cpu: illegal opcode (%#02x)", r.Defn.OpCode)
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && !r.Defn.IsBranch() && r.PageFault {
		return fmt.Errorf("cpu: unexpected page fault")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.IsBranch() {
		expected := r.Defn.Cycles
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		} else if r.PageFault {
			return fmt.Errorf("cpu: unexpected page fault for branch not taken")
		}
		if r.Cycles != expected {
			return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode,
				r.Defn.Operator,
				r.Cycles,
				expected)
		}
		return nil
	}

	if r.Defn.PageSensitive && r.PageFault {
		if r.Cycles != r.Defn.Cycles+1 {
			return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode,
				r.Defn.Operator,
				r.Cycles,
				r.Defn.Cycles+1)
		}
		return nil
	}

	if r.Cycles != r.Defn.Cycles {
		return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Operator,
			r.Cycles,
			r.Defn.Cycles)
	}

	return nil
}
