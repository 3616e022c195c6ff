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

package ram_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Theomund/goomba/hardware/memory/cpubus"
	"github.com/Theomund/goomba/hardware/memory/ram"
	"github.com/Theomund/goomba/test"
)

func TestReadWrite(t *testing.T) {
	mem := ram.NewRAM()
	test.ExpectImplements(t, mem, cpubus.Memory(nil))
	test.ExpectImplements(t, mem, cpubus.Peeker(nil))

	// top and bottom of the address space are both accessible
	for _, a := range []uint16{0x0000, 0x00ff, 0x0100, 0x8000, 0xffff} {
		test.ExpectSuccess(t, mem.Write(a, uint8(a>>4)))
		v, err := mem.Read(a)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(a>>4), "address %04x", a)
	}
}

func TestLoad(t *testing.T) {
	mem := ram.NewRAM()

	test.ExpectSuccess(t, mem.Load(0x0600, []uint8{0xa9, 0x01, 0x8d}))
	v, _ := mem.Peek(0x0602)
	test.ExpectEquality(t, v, 0x8d)

	// exactly fills to the top of memory
	test.ExpectSuccess(t, mem.Load(0xfffe, []uint8{0x01, 0x02}))

	// one byte too many
	test.ExpectFailure(t, mem.Load(0xfffe, []uint8{0x01, 0x02, 0x03}))
}

func TestVector(t *testing.T) {
	mem := ram.NewRAM()
	mem.SetVector(cpubus.Reset, 0x0400)

	lo, _ := mem.Peek(cpubus.Reset)
	hi, _ := mem.Peek(cpubus.Reset + 1)
	test.ExpectEquality(t, lo, 0x00)
	test.ExpectEquality(t, hi, 0x04)
}

func TestProtect(t *testing.T) {
	mem := ram.NewRAM()
	test.ExpectSuccess(t, mem.Protect(0xf000, 0xffff))
	test.ExpectFailure(t, mem.Protect(0x2000, 0x1000))

	err := mem.Write(0xf000, 0x01)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))

	// poke ignores protection
	test.ExpectSuccess(t, mem.Poke(0xf000, 0x01))
	v, _ := mem.Read(0xf000)
	test.ExpectEquality(t, v, 0x01)

	mem.Reset()
	test.ExpectSuccess(t, mem.Write(0xf000, 0x02))
}

func TestDump(t *testing.T) {
	mem := ram.NewRAM()
	mem.Poke(0x0011, 0xab)

	d := mem.Dump(0x0010, 0x001f)
	l := strings.Split(d, "\n")
	test.DemandEquality(t, len(l), 3)
	test.ExpectSuccess(t, strings.HasPrefix(l[2], "0010 |  00 ab 00"))
}
