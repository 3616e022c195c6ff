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

// Interrupt identifies the hardware interrupt serviced in place of an
// instruction.
type Interrupt int

// List of interrupt types.
const (
	NoInterrupt Interrupt = iota
	IRQ
	NMI
)

func (i Interrupt) String() string {
	switch i {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return ""
}

// InterruptCycles is the number of cycles taken to service an interrupt.
const InterruptCycles = 7
