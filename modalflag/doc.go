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

// Package modalflag wraps the flag package for programs with several modes of
// operation. Each mode can have its own flags and its own sub-modes.
//
// Arguments are given once with NewArgs() and then consumed by successive
// calls to Parse(), with NewMode() called in between to start a new set of
// flags:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MONITOR")
//
//	p, err := md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "print every instruction")
//		origin := md.AddAddress("origin", 0x0600, "load address")
//		...
//	}
//
// Sub-mode names are case insensitive and Mode() always returns them in upper
// case. The first sub-mode added is the default and is selected when the next
// argument does not name a sub-mode.
package modalflag
