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

// Package ram implements a flat 64k memory that satisfies the cpubus.Memory
// interface. There is no address decoding, no mirroring and no memory mapped
// I/O: every address is plain read/write memory.
//
// It is intended for test harnesses, the command line tool and the scripting
// engine. Emulation frontends will generally supply their own implementation
// of cpubus.Memory.
package ram
