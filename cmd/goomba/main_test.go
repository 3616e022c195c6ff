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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Theomund/goomba/test"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func expectOutput(t *testing.T, tw *test.Writer, s string) {
	t.Helper()
	if !strings.Contains(tw.String(), s) {
		t.Errorf("expected %q in output:\n%s", s, tw.String())
	}
}

func TestRun(t *testing.T) {
	// LDA #$05; JMP *
	bin := writeFile(t, "prog.bin", []byte{0xa9, 0x05, 0x4c, 0x02, 0x06})

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", bin}, tw), 0)
	expectOutput(t, tw, "trapped at 0x0602 after 2 instructions")
	expectOutput(t, tw, "PC=0602 A=05")

	// run is the default mode
	tw = &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-trace", bin}, tw), 0)
	expectOutput(t, tw, "$0600 LDA #$05 (2 cycles)")
	expectOutput(t, tw, "$0602 JMP $0602 (3 cycles)")
}

func TestRunOrigin(t *testing.T) {
	// LDX #$01; JMP $0702
	bin := writeFile(t, "prog.bin", []byte{0xa2, 0x01, 0x4c, 0x02, 0x07})

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-origin", "$0700", bin}, tw), 0)
	expectOutput(t, tw, "trapped at 0x0702 after 2 instructions")
	expectOutput(t, tw, "X=01")

	// start at the JMP instruction
	tw = &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-origin", "0x0700", "-pc", "0x0702", bin}, tw), 0)
	expectOutput(t, tw, "trapped at 0x0702 after 1 instructions")
	expectOutput(t, tw, "X=00")
}

func TestRunSteps(t *testing.T) {
	// INX; JMP $0600
	bin := writeFile(t, "prog.bin", []byte{0xe8, 0x4c, 0x00, 0x06})

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-steps", "5", bin}, tw), 0)
	expectOutput(t, tw, "stopped after 5 instructions")
	expectOutput(t, tw, "X=03")
}

func TestRunDecimal(t *testing.T) {
	// SED; LDA #$09; CLC; ADC #$01; JMP *
	bin := writeFile(t, "prog.bin", []byte{0xf8, 0xa9, 0x09, 0x18, 0x69, 0x01, 0x4c, 0x06, 0x06})

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", bin}, tw), 0)
	expectOutput(t, tw, "A=10")

	tw = &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-nodecimal", bin}, tw), 0)
	expectOutput(t, tw, "A=0a")
}

func TestRunErrors(t *testing.T) {
	bin := writeFile(t, "prog.bin", []byte{0x02})

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", bin}, tw), 20)
	expectOutput(t, tw, "* error in RUN mode: cpu: illegal opcode (0x02) at 0x0600")

	tw = &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN"}, tw), 20)
	expectOutput(t, tw, "one binary file required for RUN mode")

	tw = &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", filepath.Join(t.TempDir(), "missing.bin")}, tw), 20)

	tw = &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-origin", "0xffff", writeFile(t, "big.bin", []byte{1, 2})}, tw), 20)

	tw = &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-pc", "fish", bin}, tw), 20)
}

func TestHelp(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-help"}, tw), 0)
	expectOutput(t, tw, "available sub-modes: RUN, MONITOR, SCRIPT, VERSION")

	tw = &test.Writer{}
	test.ExpectEquality(t, launch([]string{"SCRIPT", "-help"}, tw), 0)
	expectOutput(t, tw, "the script runs against a fresh CPU")
}

func TestVersion(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"version"}, tw), 0)
	expectOutput(t, tw, "goomba ")
}

func TestScript(t *testing.T) {
	lua := writeFile(t, "test.lua", []byte(`
		load(0x0600, {0xa9, 0x07, 0x4c, 0x02, 0x06})
		setreg("pc", 0x0600)
		local n, trapped = run()
		print(n, trapped, reg("a"))
	`))

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"SCRIPT", lua}, tw), 0)
	test.ExpectEquality(t, tw.String(), "2\ttrue\t7\n")

	// script with a binary loaded beforehand
	bin := writeFile(t, "prog.bin", []byte{0xa9, 0x09, 0x4c, 0x02, 0x06})
	lua = writeFile(t, "test.lua", []byte(`
		print(reg("pc"), peek(0x0601))
	`))

	tw = &test.Writer{}
	test.ExpectEquality(t, launch([]string{"SCRIPT", "-binary", bin, lua}, tw), 0)
	test.ExpectEquality(t, tw.String(), "1536\t9\n")

	tw = &test.Writer{}
	test.ExpectEquality(t, launch([]string{"SCRIPT"}, tw), 20)
	expectOutput(t, tw, "one lua file required")
}
