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

// Package statsview serves runtime statistics of the running program over
// HTTP. It is only available when the program is built with the statsview
// build tag:
//
//	go build -tags statsview ./cmd/goomba
//
// Without the tag Available() returns false and Launch() does nothing.
//
// Once launched, the graphs can be seen at:
//
//	localhost:16502/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:16502/debug/pprof/
package statsview
