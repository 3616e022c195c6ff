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

//go:build windows

package monitor

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// CBreak puts the terminal attached to f into raw mode, which is the nearest
// equivalent to cbreak mode available. The returned function restores the
// terminal to its previous mode. If f is not a terminal then nothing is
// changed.
func CBreak(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("monitor: %w", err)
	}

	return func() {
		_ = term.Restore(fd, state)
	}, nil
}
