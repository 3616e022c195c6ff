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

package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Theomund/goomba/hardware/cpu"
	"github.com/Theomund/goomba/hardware/cpu/execution"
	"github.com/Theomund/goomba/hardware/cpu/registers"
	"github.com/Theomund/goomba/hardware/memory/cpubus"
	"github.com/Theomund/goomba/hardware/memory/ram"
	"github.com/Theomund/goomba/logger"
	"github.com/bradleyjkemp/memviz"
)

// the maximum number of instructions run by the go command
const maxGoSteps = 1000000

const help = `s  step one instruction
g  run until trapped or an illegal opcode
r  print registers
l  print last result
z  dump zero page
k  dump stack page
i  raise IRQ
n  raise NMI
v  write memviz graph of CPU state
h  this help
q  quit`

// Monitor steps a CPU in response to single key commands.
type Monitor struct {
	mc     *cpu.CPU
	mem    *ram.RAM
	input  *bufio.Reader
	output io.Writer

	// VizFile is the name of the file written by the v command
	VizFile string
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mc *cpu.CPU, mem *ram.RAM, input io.Reader, output io.Writer) *Monitor {
	return &Monitor{
		mc:      mc,
		mem:     mem,
		input:   bufio.NewReader(input),
		output:  output,
		VizFile: "goomba_cpu.dot",
	}
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.output, format, args...)
}

// Run reads and acts on commands until the q command or the end of input.
func (mon *Monitor) Run() error {
	mon.printf("%s\n", mon.mc.String())

	for {
		mon.printf("> ")

		b, err := mon.input.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				mon.printf("\n")
				return nil
			}
			return fmt.Errorf("monitor: %w", err)
		}

		// input is not echoed in cbreak mode
		if b != '\n' && b != '\r' {
			mon.printf("%c\n", b)
		}

		switch b {
		case 'q':
			return nil
		case 's':
			mon.step()
		case 'g':
			mon.run()
		case 'r':
			mon.printf("%s\n", mon.mc.String())
		case 'l':
			mon.printf("%s\n", mon.mc.LastResult.String())
		case 'z':
			mon.printf("%s\n", mon.mem.Dump(0x0000, 0x00ff))
		case 'k':
			mon.printf("%s\n", mon.mem.Dump(mon.mc.SP.Address(), cpubus.StackPage|0xff))
		case 'i':
			mon.interrupt(false)
		case 'n':
			mon.interrupt(true)
		case 'v':
			err = mon.viz()
			if err != nil {
				mon.printf("* %s\n", err)
			}
		case 'h', '?':
			mon.printf("%s\n", help)
		case ' ', '\n', '\r', '\t':
		default:
			mon.printf("* unknown command (h for help)\n")
		}
	}
}

func (mon *Monitor) step() {
	r, err := mon.mc.Step()
	if err != nil {
		mon.printf("* %s\n", err)
		return
	}

	mon.printf("%s\n", r.String())
	if mon.mc.IsTrapped() {
		mon.printf("trapped at %#04x\n", mon.mc.PC.Address())
	}
}

func (mon *Monitor) run() {
	for range maxGoSteps {
		r, err := mon.mc.Step()
		if err != nil {
			mon.printf("* %s\n", err)
			break // for loop
		}
		if mon.mc.IsTrapped() {
			mon.printf("%s\n", r.String())
			mon.printf("trapped at %#04x\n", mon.mc.PC.Address())
			break // for loop
		}
	}
	mon.printf("%s\n", mon.mc.String())
}

func (mon *Monitor) interrupt(nmi bool) {
	if !nmi && mon.mc.Status.InterruptDisable {
		mon.printf("IRQ ignored (interrupt disable flag is set)\n")
		return
	}
	err := mon.mc.Interrupt(nmi)
	if err != nil {
		mon.printf("* %s\n", err)
		return
	}
	mon.printf("%s\n", mon.mc.LastResult.String())
}

// the parts of the CPU that are shown in the memviz graph. the CPU type
// itself refers to the entire address space
type vizState struct {
	PC         registers.ProgramCounter
	A          registers.Register
	X          registers.Register
	Y          registers.Register
	SP         registers.StackPointer
	Status     registers.StatusRegister
	LastResult *execution.Result
}

func (mon *Monitor) viz() error {
	f, err := os.Create(mon.VizFile)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer f.Close()

	snapshot := mon.mc.Snapshot()
	memviz.Map(f, &vizState{
		PC:         snapshot.PC,
		A:          snapshot.A,
		X:          snapshot.X,
		Y:          snapshot.Y,
		SP:         snapshot.SP,
		Status:     snapshot.Status,
		LastResult: &snapshot.LastResult,
	})

	logger.Logf(logger.Allow, "MONITOR", "cpu graph written to %s", mon.VizFile)
	mon.printf("cpu graph written to %s\n", mon.VizFile)

	return nil
}
