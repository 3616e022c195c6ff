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

// Package monitor is an interactive front end for stepping through a program.
// Commands are single key presses and are acted upon immediately when the
// terminal is in cbreak mode (see CBreak()). Any io.Reader can be used as
// input so a monitor session can also be scripted.
//
// The available commands are listed by the h command.
package monitor
