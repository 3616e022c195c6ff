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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/Theomund/goomba/hardware/cpu"
	"github.com/Theomund/goomba/hardware/memory/ram"
	"github.com/Theomund/goomba/logger"
	lua "github.com/yuin/gopher-lua"
)

// Engine binds a Lua state to a CPU and RAM.
type Engine struct {
	L      *lua.LState
	mc     *cpu.CPU
	mem    *ram.RAM
	output io.Writer
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The Close() function should be called when the engine is no longer needed.
func NewEngine(mc *cpu.CPU, mem *ram.RAM, output io.Writer) *Engine {
	eng := &Engine{
		L:      lua.NewState(),
		mc:     mc,
		mem:    mem,
		output: output,
	}

	for name, fn := range map[string]lua.LGFunction{
		"peek":   eng.peek,
		"poke":   eng.poke,
		"load":   eng.load,
		"vector": eng.vector,
		"reset":  eng.reset,
		"step":   eng.step,
		"run":    eng.run,
		"reg":    eng.reg,
		"setreg": eng.setreg,
		"flag":   eng.flag,
		"irq":    eng.irq,
		"nmi":    eng.nmi,
		"print":  eng.print,
	} {
		eng.L.SetGlobal(name, eng.L.NewFunction(fn))
	}

	return eng
}

// Close the Lua state.
func (eng *Engine) Close() {
	eng.L.Close()
}

// RunFile runs the named Lua file.
func (eng *Engine) RunFile(filename string) error {
	logger.Logf(logger.Allow, "SCRIPT", "running %s", filename)
	if err := eng.L.DoFile(filename); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunString runs Lua source code.
func (eng *Engine) RunString(source string) error {
	if err := eng.L.DoString(source); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// checkAddress returns argument n as a 16 bit address.
func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

// checkByte returns argument n as an 8 bit value.
func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (eng *Engine) peek(L *lua.LState) int {
	v, err := eng.mem.Peek(checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%s", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (eng *Engine) poke(L *lua.LState) int {
	err := eng.mem.Poke(checkAddress(L, 1), checkByte(L, 2))
	if err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func (eng *Engine) load(L *lua.LState) int {
	origin := checkAddress(L, 1)
	tbl := L.CheckTable(2)

	data := make([]uint8, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		v, ok := tbl.RawGetInt(i).(lua.LNumber)
		if !ok || v < 0 || v > 0xff {
			L.ArgError(2, fmt.Sprintf("entry %d is not a byte", i))
		}
		data = append(data, uint8(v))
	}

	err := eng.mem.Load(origin, data)
	if err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func (eng *Engine) vector(L *lua.LState) int {
	eng.mem.SetVector(checkAddress(L, 1), checkAddress(L, 2))
	return 0
}

func (eng *Engine) reset(L *lua.LState) int {
	err := eng.mc.Reset()
	if err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func (eng *Engine) step(L *lua.LState) int {
	r, err := eng.mc.Step()
	if err != nil {
		L.RaiseError("%s", err)
	}
	L.Push(lua.LNumber(r.Cycles))
	L.Push(lua.LString(r.String()))
	return 2
}

func (eng *Engine) run(L *lua.LState) int {
	limit := L.OptInt(1, 1000000)

	var steps int
	for steps < limit {
		_, err := eng.mc.Step()
		if err != nil {
			L.RaiseError("%s", err)
		}
		steps++
		if eng.mc.IsTrapped() {
			break // for loop
		}
	}

	L.Push(lua.LNumber(steps))
	L.Push(lua.LBool(eng.mc.IsTrapped()))
	return 2
}

func (eng *Engine) reg(L *lua.LState) int {
	var v int
	switch strings.ToLower(L.CheckString(1)) {
	case "a":
		v = int(eng.mc.A.Value())
	case "x":
		v = int(eng.mc.X.Value())
	case "y":
		v = int(eng.mc.Y.Value())
	case "sp":
		v = int(eng.mc.SP.Value())
	case "pc":
		v = int(eng.mc.PC.Address())
	case "p":
		v = int(eng.mc.Status.Value())
	default:
		L.ArgError(1, "unknown register")
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (eng *Engine) setreg(L *lua.LState) int {
	name := strings.ToLower(L.CheckString(1))
	if name == "pc" {
		eng.mc.LoadPC(checkAddress(L, 2))
		return 0
	}

	v := checkByte(L, 2)
	switch name {
	case "a":
		eng.mc.A.Load(v)
	case "x":
		eng.mc.X.Load(v)
	case "y":
		eng.mc.Y.Load(v)
	case "sp":
		eng.mc.SP.Load(v)
	case "p":
		eng.mc.Status.Load(v)
	default:
		L.ArgError(1, "unknown register")
	}
	return 0
}

func (eng *Engine) flag(L *lua.LState) int {
	var v bool
	switch strings.ToLower(L.CheckString(1)) {
	case "n":
		v = eng.mc.Status.Sign
	case "v":
		v = eng.mc.Status.Overflow
	case "b":
		v = eng.mc.Status.Break
	case "d":
		v = eng.mc.Status.DecimalMode
	case "i":
		v = eng.mc.Status.InterruptDisable
	case "z":
		v = eng.mc.Status.Zero
	case "c":
		v = eng.mc.Status.Carry
	default:
		L.ArgError(1, "unknown flag")
	}
	L.Push(lua.LBool(v))
	return 1
}

func (eng *Engine) irq(L *lua.LState) int {
	err := eng.mc.Interrupt(false)
	if err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func (eng *Engine) nmi(L *lua.LState) int {
	err := eng.mc.Interrupt(true)
	if err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func (eng *Engine) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(eng.output, strings.Join(s, "\t"))
	return 0
}
