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

package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Theomund/goomba/hardware/cpu"
	"github.com/Theomund/goomba/hardware/memory/ram"
	"github.com/Theomund/goomba/script"
	"github.com/Theomund/goomba/test"
)

func newEngine(t *testing.T) (*script.Engine, *cpu.CPU, *ram.RAM, *test.Writer) {
	t.Helper()

	mem := ram.NewRAM()
	mc := cpu.NewCPU(mem)
	tw := &test.Writer{}
	eng := script.NewEngine(mc, mem, tw)
	t.Cleanup(eng.Close)

	return eng, mc, mem, tw
}

func TestPeekPoke(t *testing.T) {
	eng, _, mem, tw := newEngine(t)

	test.ExpectSuccess(t, eng.RunString(`
		poke(0x10, 0x42)
		print(peek(0x10))
	`))
	test.ExpectEquality(t, tw.String(), "66\n")

	v, _ := mem.Peek(0x10)
	test.ExpectEquality(t, v, 0x42)

	test.ExpectFailure(t, eng.RunString(`poke(0x10000, 1)`))
	test.ExpectFailure(t, eng.RunString(`poke(0x10, 256)`))
}

func TestProgram(t *testing.T) {
	eng, mc, _, tw := newEngine(t)

	// LDA #$05; ADC #$03; JMP *
	test.ExpectSuccess(t, eng.RunString(`
		load(0x0600, {0xa9, 0x05, 0x69, 0x03, 0x4c, 0x04, 0x06})
		vector(0xfffc, 0x0600)
		reset()
		local cycles, desc = step()
		print(cycles, desc)
		local n, trapped = run()
		print(n, trapped, reg("a"), reg("pc"))
	`))
	test.ExpectEquality(t, tw.String(), "2\t$0600 LDA #$05 (2 cycles)\n2\ttrue\t8\t1540\n")
	test.ExpectEquality(t, mc.A.Value(), 0x08)
	test.ExpectEquality(t, mc.IsTrapped(), true)
}

func TestRunLimit(t *testing.T) {
	eng, mc, _, tw := newEngine(t)

	// INX; JMP $0600
	test.ExpectSuccess(t, eng.RunString(`
		load(0x0600, {0xe8, 0x4c, 0x00, 0x06})
		setreg("pc", 0x0600)
		print(run(10))
	`))
	test.ExpectEquality(t, tw.String(), "10\tfalse\n")
	test.ExpectEquality(t, mc.X.Value(), 5)
}

func TestRegisters(t *testing.T) {
	eng, mc, _, tw := newEngine(t)

	test.ExpectSuccess(t, eng.RunString(`
		setreg("a", 1)
		setreg("X", 2)
		setreg("y", 3)
		setreg("sp", 0x80)
		setreg("pc", 0x1234)
		setreg("p", 0x01)
		print(reg("a"), reg("x"), reg("Y"), reg("sp"), reg("pc"), reg("p"))
		print(flag("c"), flag("z"))
	`))
	test.ExpectEquality(t, tw.String(), "1\t2\t3\t128\t4660\t33\ntrue\tfalse\n")
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)

	test.ExpectFailure(t, eng.RunString(`reg("q")`))
	test.ExpectFailure(t, eng.RunString(`setreg("q", 1)`))
	test.ExpectFailure(t, eng.RunString(`flag("q")`))
}

func TestIllegalOpcode(t *testing.T) {
	eng, _, _, _ := newEngine(t)

	test.ExpectFailure(t, eng.RunString(`
		load(0x0600, {0x02})
		setreg("pc", 0x0600)
		step()
	`))

	test.ExpectFailure(t, eng.RunString(`run()`))
}

func TestInterrupts(t *testing.T) {
	eng, mc, _, tw := newEngine(t)

	test.ExpectSuccess(t, eng.RunString(`
		vector(0xfffa, 0x0700)
		vector(0xfffe, 0x0800)
		setreg("pc", 0x0600)
		setreg("p", 0x04)
		irq()
		print(reg("pc"))
		nmi()
		print(reg("pc"), reg("sp"), flag("i"))
	`))

	// irq is ignored because interrupt disable flag is set
	test.ExpectEquality(t, tw.String(), "1536\n1792\t250\ttrue\n")
	test.ExpectEquality(t, mc.PC.Address(), 0x0700)
}

func TestLoadErrors(t *testing.T) {
	eng, _, _, _ := newEngine(t)
	test.ExpectFailure(t, eng.RunString(`load(0x0600, {1, 2, 300})`))
	test.ExpectFailure(t, eng.RunString(`load(0x0600, {1, "fish"})`))
	test.ExpectFailure(t, eng.RunString(`load(0xffff, {1, 2})`))
}

func TestRunFile(t *testing.T) {
	eng, _, _, tw := newEngine(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`print("hello")`), 0o644))
	test.ExpectSuccess(t, eng.RunFile(fn))
	test.ExpectEquality(t, tw.String(), "hello\n")

	test.ExpectFailure(t, eng.RunFile(filepath.Join(t.TempDir(), "missing.lua")))
}
