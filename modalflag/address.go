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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// addressValue implements flag.Value for 16 bit addresses.
type addressValue uint16

func (a *addressValue) String() string {
	if a == nil {
		return "0x0000"
	}
	return fmt.Sprintf("%#04x", uint16(*a))
}

func (a *addressValue) Set(s string) error {
	if v, ok := strings.CutPrefix(s, "$"); ok {
		s = "0x" + v
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("modalflag: not a 16 bit address: %s", s)
	}
	*a = addressValue(v)
	return nil
}
