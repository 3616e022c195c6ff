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

// Package logger is the central log repository for goomba. Log entries are
// tagged and collapsed when the same entry is repeated consecutively.
//
// The package level functions operate on a single central log. Independent
// logs can be created with NewLogger(), which is mostly useful for testing.
//
// Every log request carries a Permission. Contexts that should not be
// producing log entries (for example, a CPU being driven speculatively) can
// refuse permission and the entry will be silently dropped.
package logger
