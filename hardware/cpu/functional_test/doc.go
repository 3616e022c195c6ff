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

// Package functional_test runs small, hand assembled 6502 programs to
// completion. Each program finishes by jumping to itself, which is the
// convention used by 6502 test suites to signal the end of a test.
//
// Unlike the tests in the cpu package, which check instructions in
// isolation, these programs check that instructions work together: loops,
// subroutines, interrupts and decimal arithmetic across many steps.
package functional_test
