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

import (
	"fmt"

	"github.com/Theomund/goomba/hardware/memory/cpubus"
)

// StackPointer represents the SP register in the 6502 CPU. The stack is
// confined to page one of memory and the pointer wraps within that page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the 8bit value of the SP.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory location in page one pointed to by the SP.
func (sp StackPointer) Address() uint16 {
	return cpubus.StackPage | uint16(sp.value)
}

// Load value into SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Decrement the SP. Used after a value has been pushed. 0x00 wraps to 0xff.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Increment the SP. Used before a value is pulled. 0xff wraps to 0x00.
func (sp *StackPointer) Increment() {
	sp.value++
}
