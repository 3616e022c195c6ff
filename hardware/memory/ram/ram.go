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

package ram

import (
	"fmt"
	"strings"

	"github.com/Theomund/goomba/hardware/memory/cpubus"
)

// Size of the memory area. The entire 16bit address space.
const Size = 0x10000

// RAM is 64k of flat memory.
type RAM struct {
	memory []uint8

	// ReadOnly address ranges. writes to these addresses will fail with an
	// error wrapping cpubus.AddressError
	readOnly []span
}

type span struct {
	origin uint16
	memtop uint16
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		memory: make([]uint8, Size),
	}
}

// Reset clears all memory and removes any read-only protection.
func (mem *RAM) Reset() {
	clear(mem.memory)
	mem.readOnly = mem.readOnly[:0]
}

// Protect marks an address range (inclusive) as read-only.
func (mem *RAM) Protect(origin uint16, memtop uint16) error {
	if memtop < origin {
		return fmt.Errorf("ram: invalid protection range (%#04x to %#04x)", origin, memtop)
	}
	mem.readOnly = append(mem.readOnly, span{origin: origin, memtop: memtop})
	return nil
}

func (mem *RAM) isProtected(address uint16) bool {
	for _, s := range mem.readOnly {
		if address >= s.origin && address <= s.memtop {
			return true
		}
	}
	return false
}

// Read implements the cpubus.Memory interface.
func (mem *RAM) Read(address uint16) (uint8, error) {
	return mem.memory[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *RAM) Write(address uint16, data uint8) error {
	if mem.isProtected(address) {
		return fmt.Errorf("ram: write to %#04x: %w", address, cpubus.AddressError)
	}
	mem.memory[address] = data
	return nil
}

// Peek implements the cpubus.Peeker interface.
func (mem *RAM) Peek(address uint16) (uint8, error) {
	return mem.memory[address], nil
}

// Poke writes to memory ignoring any read-only protection.
func (mem *RAM) Poke(address uint16, data uint8) error {
	mem.memory[address] = data
	return nil
}

// Load copies data into memory starting at origin. Data that would extend
// past the top of memory is an error and nothing is copied.
func (mem *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return fmt.Errorf("ram: %d bytes will not fit at %#04x", len(data), origin)
	}
	copy(mem.memory[origin:], data)
	return nil
}

// SetVector stores a 16bit address at the vector address (little-endian). The
// vector should be one of the vectors defined in the cpubus package.
func (mem *RAM) SetVector(vector uint16, address uint16) {
	mem.memory[vector] = uint8(address)
	mem.memory[vector+1] = uint8(address >> 8)
}

// Dump returns a formatted hex dump of a range of memory (inclusive). The
// range is extended to whole lines of 16 bytes.
func (mem *RAM) Dump(origin uint16, memtop uint16) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	for a := int(origin) &^ 0x0f; a <= int(memtop); a += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", a))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.memory[a+x]))
		}
		s.WriteString("\n")
	}

	return strings.TrimRight(s.String(), "\n")
}
