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

// Package script runs Lua scripts against a CPU and its memory. It is useful
// for setting up test conditions and for checking the state of the machine
// after a program has run.
//
// The following functions are available to scripts:
//
//	peek(address)           returns the byte at address
//	poke(address, value)    writes value to address
//	load(origin, {bytes})   writes a table of bytes starting at origin
//	vector(vector, address) writes address to an interrupt vector
//	reset()                 resets the CPU
//	step()                  runs one instruction. returns cycles and a description
//	run(max)                runs until trapped or max instructions. returns the
//	                        number of instructions run and whether the CPU trapped
//	reg(name)               returns register value. names are a, x, y, sp, pc and p
//	setreg(name, value)     sets register value
//	flag(name)              returns status flag. names are n, v, b, d, i, z and c
//	irq() / nmi()           raises an interrupt
//	print(...)              prints to the engine's output
//
// An illegal opcode encountered by step() or run() raises a Lua error.
package script
