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
	"fmt"
	"io"
	"os"

	"github.com/Theomund/goomba/hardware/cpu"
	"github.com/Theomund/goomba/hardware/memory/cpubus"
	"github.com/Theomund/goomba/hardware/memory/ram"
	"github.com/Theomund/goomba/logger"
	"github.com/Theomund/goomba/modalflag"
	"github.com/Theomund/goomba/monitor"
	"github.com/Theomund/goomba/script"
	"github.com/Theomund/goomba/statsview"
	"github.com/Theomund/goomba/version"
)

const defaultOrigin = 0x0600

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and runs the selected mode. returns the
// process exit code
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "MONITOR", "SCRIPT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = runMode(md, output)
	case "MONITOR":
		err = monitorMode(md, output)
	case "SCRIPT":
		err = scriptMode(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags shared by every mode that loads a binary
type loadFlags struct {
	origin    *uint16
	pc        *uint16
	noDecimal *bool
	log       *bool
}

func (lf loadFlags) echo(output io.Writer) {
	if *lf.log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}
}

func addLoadFlags(md *modalflag.Modes) loadFlags {
	return loadFlags{
		origin:    md.AddAddress("origin", defaultOrigin, "address at which to load the binary"),
		pc:        md.AddAddress("pc", 0, "start address (defaults to reset vector, or the origin if the binary does not cover the reset vector)"),
		noDecimal: md.AddBool("nodecimal", false, "ignore decimal mode flag in ADC and SBC"),
		log:       md.AddBool("log", false, "echo log to stdout"),
	}
}

// prepare a new CPU and RAM and load the named binary file
func prepare(md *modalflag.Modes, lf loadFlags, filename string, output io.Writer) (*cpu.CPU, *ram.RAM, error) {
	mem := ram.NewRAM()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}
	err = mem.Load(*lf.origin, data)
	if err != nil {
		return nil, nil, err
	}
	logger.Logf(logger.Allow, "GOOMBA", "loaded %d bytes from %s at %#04x", len(data), filename, *lf.origin)

	// a binary that does not include the reset vector starts at the origin
	// unless a start address has been given
	pcSet := false
	md.Visit(func(f string) {
		if f == "pc" {
			pcSet = true
		}
	})

	switch {
	case pcSet:
		mem.SetVector(cpubus.Reset, *lf.pc)
	case int(*lf.origin) > int(cpubus.Reset) || int(*lf.origin)+len(data) <= int(cpubus.Reset)+1:
		mem.SetVector(cpubus.Reset, *lf.origin)
	}

	mc := cpu.NewCPU(mem)
	mc.NoDecimalMode = *lf.noDecimal

	err = mc.Reset()
	if err != nil {
		return nil, nil, err
	}

	return mc, mem, nil
}

func runMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	lf := addLoadFlags(md)
	steps := md.AddInt("steps", 0, "maximum number of instructions to run (0 for no limit)")
	trace := md.AddBool("trace", false, "print every instruction")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	lf.echo(output)

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one binary file required for %s mode", md)
	}

	mc, _, err := prepare(md, lf, md.GetArg(0), output)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(output)
	}

	err = run(mc, *steps, *trace, output)
	fmt.Fprintln(output, mc.String())

	return err
}

// run the CPU until it traps or for the number of steps given. a steps value
// of zero means there is no limit
func run(mc *cpu.CPU, steps int, trace bool, output io.Writer) error {
	for n := 0; steps == 0 || n < steps; n++ {
		r, err := mc.Step()
		if err != nil {
			return err
		}

		if trace {
			fmt.Fprintln(output, r.String())
		}

		if mc.IsTrapped() {
			fmt.Fprintf(output, "trapped at %#04x after %d instructions\n", mc.PC.Address(), n+1)
			return nil
		}
	}

	fmt.Fprintf(output, "stopped after %d instructions\n", steps)
	return nil
}

func monitorMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	lf := addLoadFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	lf.echo(output)

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one binary file required for %s mode", md)
	}

	mc, mem, err := prepare(md, lf, md.GetArg(0), output)
	if err != nil {
		return err
	}

	restore, err := monitor.CBreak(os.Stdin)
	if err != nil {
		return err
	}
	defer restore()

	return monitor.NewMonitor(mc, mem, os.Stdin, output).Run()
}

func scriptMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	lf := addLoadFlags(md)
	binary := md.AddString("binary", "", "binary file to load before running the script")
	md.AdditionalHelp("the script runs against a fresh CPU and 64K of RAM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	lf.echo(output)

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one lua file required for %s mode", md)
	}

	var mc *cpu.CPU
	var mem *ram.RAM

	if *binary != "" {
		mc, mem, err = prepare(md, lf, *binary, output)
		if err != nil {
			return err
		}
	} else {
		mem = ram.NewRAM()
		mc = cpu.NewCPU(mem)
		mc.NoDecimalMode = *lf.noDecimal
	}

	eng := script.NewEngine(mc, mem, output)
	defer eng.Close()

	return eng.RunFile(md.GetArg(0))
}
