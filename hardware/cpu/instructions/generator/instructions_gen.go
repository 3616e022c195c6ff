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

// Command generator creates the table.go file in the instructions package
// from the instructions.csv file. It is run by go generate from the
// instructions package directory.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Theomund/goomba/hardware/cpu/instructions"
)

const definitionsCSVFile = "instructions.csv"
const generatedGoFile = "table.go"

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go; DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// table of instruction definitions for the 6502, indexed by opcode\n" +
	"var table = [256]Definition{"

const trailingBoilerPlate = "\n}\n"

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":             instructions.Implied,
	"ACCUMULATOR":         instructions.Accumulator,
	"IMMEDIATE":           instructions.Immediate,
	"RELATIVE":            instructions.Relative,
	"ABSOLUTE":            instructions.Absolute,
	"ZERO_PAGE":           instructions.ZeroPage,
	"INDIRECT":            instructions.Indirect,
	"INDEXED_INDIRECT":    instructions.IndexedIndirect,
	"INDIRECT_INDEXED":    instructions.IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  instructions.AbsoluteIndexedY,
	"ZERO_PAGE_INDEXED_X": instructions.ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": instructions.ZeroPageIndexedY,
}

var effects = map[string]instructions.EffectCategory{
	"READ":       instructions.Read,
	"WRITE":      instructions.Write,
	"RMW":        instructions.RMW,
	"FLOW":       instructions.Flow,
	"SUBROUTINE": instructions.Subroutine,
	"INTERRUPT":  instructions.Interrupt,
}

func parseCSV() (map[uint8]instructions.Definition, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// instruction effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	for {
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := csvr.FieldPos(0)

		if !(len(rec) == 5 || len(rec) == 6) {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.ToUpper(strings.TrimSpace(rec[i]))
		}

		defn := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0X"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)
		if _, ok := deftable[defn.OpCode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		// field: mnemonic
		var ok bool
		defn.Operator, ok = instructions.LookupOperator(rec[1])
		if !ok {
			return nil, fmt.Errorf("invalid mnemonic for %#02x (%s) [line %d]", defn.OpCode, rec[1], line)
		}

		// field: cycle count
		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		defn.AddressingMode, ok = addressingModes[rec[3]]
		if !ok {
			return nil, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}
		defn.Bytes = defn.AddressingMode.Bytes()

		// field: page sensitive
		switch rec[4] {
		case "TRUE":
			defn.PageSensitive = true
		case "FALSE":
			defn.PageSensitive = false
		default:
			return nil, fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		// field: effect category
		defn.Effect = instructions.Read
		if len(rec) == 6 {
			defn.Effect, ok = effects[rec[5]]
			if !ok {
				return nil, fmt.Errorf("unknown category for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
			}
		}

		deftable[defn.OpCode] = defn
	}

	return deftable, nil
}

func operatorName(op instructions.Operator) string {
	if op == instructions.Illegal {
		return "Illegal"
	}
	s := op.String()
	return s[:1] + strings.ToLower(s[1:])
}

func generate(deftable map[uint8]instructions.Definition) string {
	var s strings.Builder
	s.WriteString(leadingBoilerPlate)
	for opcode := range 256 {
		defn, ok := deftable[uint8(opcode)]
		if !ok {
			defn = instructions.Definition{
				OpCode:         uint8(opcode),
				Operator:       instructions.Illegal,
				Bytes:          1,
				AddressingMode: instructions.Implied,
				Effect:         instructions.Read,
			}
		}
		fmt.Fprintf(&s, "\n{OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s},",
			defn.OpCode, operatorName(defn.Operator), defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
	}
	s.WriteString(trailingBoilerPlate)
	return s.String()
}

func main() {
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	fmt.Printf("%d opcodes defined, %d illegal\n", len(deftable), 256-len(deftable))

	output, err := format.Source([]byte(generate(deftable)))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, output, 0o644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
