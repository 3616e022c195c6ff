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

package thomharte

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Theomund/goomba/hardware/cpu"
	"github.com/Theomund/goomba/hardware/cpu/instructions"
	"github.com/Theomund/goomba/hardware/cpu/registers"
	"github.com/Theomund/goomba/test"
)

type testMem struct {
	internal []uint8
}

func newTestMem() *testMem {
	return &testMem{
		// the CPU has a 16bit address bus so the maximum amount of memory is 64k
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *testMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

type RAMEntry struct {
	Address uint16
	Value   uint8
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string `json:"name"`
	Initial State  `json:"initial"`
	Final   State  `json:"final"`

	// we're only interested in the number of bus cycles
	Cycles []json.RawMessage `json:"cycles"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// we have a custom unmarshaller for Tests only so that we can insert the Name field to any
	// error. to make the unmarshaller as clean as possible we want to avoid recursion; and we can
	// do this by using an alias type
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

var testsPath = filepath.Join("6502", "v1")

func TestThomHarte(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if errors.Is(err, fs.ErrNotExist) {
		t.Skipf("no test data in %s", testsPath)
	}
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range d {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		// test files are named after the opcode being tested
		opcode, err := strconv.ParseUint(strings.TrimSuffix(e.Name(), ".json"), 16, 8)
		if err != nil {
			continue
		}
		if instructions.Decode(uint8(opcode)).IsIllegal() {
			continue
		}

		testThomHarte(t, filepath.Join(testsPath, e.Name()))
	}
}

func testThomHarte(t *testing.T, testFile string) {
	t.Logf("testing %s", testFile)

	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	// the break flag only exists on the stack
	const mask = ^registers.Break

	for i, s := range tests {
		mc.PC.Load(uint16(s.Initial.PC))
		mc.A.Load(uint8(s.Initial.A))
		mc.X.Load(uint8(s.Initial.X))
		mc.Y.Load(uint8(s.Initial.Y))
		mc.SP.Load(uint8(s.Initial.S))
		mc.Status.Load(uint8(s.Initial.P))
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}

		r, err := mc.Step()
		if err != nil {
			t.Fatal(err)
		}

		var fail bool

		fail = !test.ExpectEquality(t, mc.PC.Address(), uint16(s.Final.PC), testFile, i, "PC") || fail
		fail = !test.ExpectEquality(t, mc.A.Value(), uint8(s.Final.A), testFile, i, "A") || fail
		fail = !test.ExpectEquality(t, mc.X.Value(), uint8(s.Final.X), testFile, i, "X") || fail
		fail = !test.ExpectEquality(t, mc.Y.Value(), uint8(s.Final.Y), testFile, i, "Y") || fail
		fail = !test.ExpectEquality(t, mc.SP.Value(), uint8(s.Final.S), testFile, i, "SP") || fail
		fail = !test.ExpectEquality(t, mc.Status.Value()&mask, uint8(s.Final.P)&mask, testFile, i, "Status") || fail
		fail = !test.ExpectEquality(t, r.Cycles, len(s.Cycles), testFile, i, "Cycles") || fail
		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, testFile, i, fmt.Sprintf("RAM %04x", r.Address)) || fail
		}

		if fail {
			t.Logf("last instruction: %s", mc.LastResult.String())
			t.Fatalf("%s: failed on line %d (%s)", testFile, i, s.Name)
		}
	}
}
