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

package cpubus

import "errors"

// Memory defines the operations for the memory system when accessed from the
// CPU. The CPU issues only these two operations and makes no assumptions about
// what is backing any given address.
//
// The full 16bit address space is addressable. Implementations that map
// devices or ROM into the address space should return an error wrapping
// AddressError for addresses that cannot be read or written. The CPU will note
// the error and carry on, the same as the real hardware would.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Peeker is an optional interface for Memory implementations that can be read
// without side-effects. Debugging functions prefer Peek() over Read() when it
// is available.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// AddressError is the sentinel error that Memory implementations should wrap
// when an address is unmapped, read-only or otherwise inaccessible. Errors
// that do not wrap AddressError are treated as fatal by the CPU.
var AddressError = errors.New("inaccessible address")
