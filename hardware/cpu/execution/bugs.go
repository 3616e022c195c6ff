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

// Bug describes a known quirk of the 6502 that was triggered during
// execution. The quirks are faithfully emulated but can catch people out.
type Bug string

// List of bugs that can be noted in a Result.
const (
	NoBug                        Bug = ""
	JmpIndirectAddressingBug     Bug = "indirect addressing bug (JMP bug)"
	IndexedIndirectAddressingBug Bug = "indexed indirect pointer wrapped in zero page"
	ZeroPageIndexBug             Bug = "zero page index wrapped"
)
