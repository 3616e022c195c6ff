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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and return false
// so that the calling test can decide whether to continue. The Demand*()
// functions are the same except that failure is fatal.
//
// The nil type is considered a success. This may not be how we want to
// interpret nil in all situations but because of how errors usually work (nil
// to indicate no error) we need to interpret nil in this way.
//
// The optional tags argument to every function is used to identify the
// failing test in the output. The first tag can be a format string in which
// case the remaining tags are used as arguments to that format.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
