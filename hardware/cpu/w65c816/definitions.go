// This file is part of Gophercores.
//
// Gophercores is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophercores is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophercores.  If not, see <https://www.gnu.org/licenses/>.

package w65c816

import (
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
)

//go:embed definitions.csv
var definitionsCSV string

var definitions instructions.Table

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":                         instructions.Implied,
	"ACCUMULATOR":                     instructions.Accumulator,
	"IMMEDIATE":                       instructions.Immediate,
	"RELATIVE":                        instructions.Relative,
	"RELATIVE_LONG":                   instructions.RelativeLong,
	"ABSOLUTE":                        instructions.Absolute,
	"ABSOLUTE_X":                      instructions.AbsoluteX,
	"ABSOLUTE_Y":                      instructions.AbsoluteY,
	"ABSOLUTE_LONG":                   instructions.AbsoluteLong,
	"ABSOLUTE_LONG_X":                 instructions.AbsoluteLongX,
	"ABSOLUTE_INDIRECT":               instructions.AbsoluteIndirect,
	"ABSOLUTE_INDIRECT_LONG":          instructions.AbsoluteIndirectLong,
	"ABSOLUTE_INDEXED_INDIRECT":       instructions.AbsoluteIndexedIndirect,
	"DIRECT":                          instructions.Direct,
	"DIRECT_X":                        instructions.DirectX,
	"DIRECT_Y":                        instructions.DirectY,
	"DIRECT_INDIRECT":                 instructions.DirectIndirect,
	"DIRECT_INDIRECT_LONG":            instructions.DirectIndirectLong,
	"DIRECT_INDEXED_INDIRECT":         instructions.DirectIndexedIndirect,
	"DIRECT_INDIRECT_INDEXED":         instructions.DirectIndirectIndexed,
	"DIRECT_INDIRECT_LONG_INDEXED":    instructions.DirectIndirectLongIndexed,
	"STACK_RELATIVE":                  instructions.StackRelative,
	"STACK_RELATIVE_INDIRECT_INDEXED": instructions.StackRelativeIndirectIndexed,
	"BLOCK_MOVE":                      instructions.BlockMove,
	"STACK":                           instructions.Stack,
}

var effects = map[string]instructions.Category{
	"READ":       instructions.Read,
	"WRITE":      instructions.Write,
	"MODIFY":     instructions.Modify,
	"FLOW":       instructions.Flow,
	"SUBROUTINE": instructions.Subroutine,
	"INTERRUPT":  instructions.Interrupt,
}

var sensitivities = map[string]instructions.Sensitivity{
	"M": instructions.AccumulatorWidth,
	"X": instructions.IndexWidth,
}

func init() {
	if err := parseDefinitions(strings.NewReader(definitionsCSV), &definitions); err != nil {
		panic(err)
	}
	if err := definitions.Validate(); err != nil {
		panic(err)
	}
}

// parseDefinitions reads the instruction definitions in CSV form into the
// table. The MaxCycles field of each definition is derived from the addressing
// mode, effect and width sensitivity.
func parseDefinitions(r io.Reader, tab *instructions.Table) error {
	csvr := csv.NewReader(r)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// the width field is optional
	csvr.FieldsPerRecord = -1

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return curated.Errorf("w65c816: %v", err)
		}

		if !(len(rec) == 6 || len(rec) == 7) {
			return curated.Errorf("w65c816: wrong number of fields in instruction definition (%s)", rec)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		opcode, err := strconv.ParseUint(rec[0], 0, 8)
		if err != nil {
			return curated.Errorf("w65c816: invalid opcode (%s)", rec[0])
		}

		defn := instructions.Definition{
			OpCode:   uint8(opcode),
			Operator: rec[1],
		}

		defn.Bytes, err = strconv.Atoi(rec[2])
		if err != nil {
			return curated.Errorf("w65c816: invalid byte count for %s (%s)", rec[1], rec[2])
		}

		defn.Cycles, err = strconv.Atoi(rec[3])
		if err != nil {
			return curated.Errorf("w65c816: invalid cycle count for %s (%s)", rec[1], rec[3])
		}

		var ok bool
		defn.AddressingMode, ok = addressingModes[rec[4]]
		if !ok {
			return curated.Errorf("w65c816: unknown addressing mode for %s (%s)", rec[1], rec[4])
		}

		defn.Effect, ok = effects[rec[5]]
		if !ok {
			return curated.Errorf("w65c816: unknown effect for %s (%s)", rec[1], rec[5])
		}

		if len(rec) == 7 {
			defn.Sensitivity, ok = sensitivities[rec[6]]
			if !ok {
				return curated.Errorf("w65c816: unknown width for %s (%s)", rec[1], rec[6])
			}
		}

		defn.Unknown = defn.Operator == WDM

		if extra := maxExtraCycles(defn); extra > 0 {
			defn.MaxCycles = defn.Cycles + extra
		}

		tab[opcode] = defn
	}

	return nil
}

// maxExtraCycles returns the greatest number of cycles that can be added to
// the base cost of the instruction at run time.
func maxExtraCycles(defn instructions.Definition) int {
	var extra int

	if defn.Sensitivity != instructions.Fixed {
		extra += widthCycles(defn)
	}

	if defn.AddressingMode.IsDirect() {
		extra++
	}

	if indexPenalty(defn) {
		extra++
	}

	switch defn.Operator {
	case BRK, COP, RTI:
		extra++
	case BRA:
		extra++
	default:
		if defn.AddressingMode == instructions.Relative {
			extra += 2
		}
	}

	return extra
}

// widthCycles returns the number of cycles added to the instruction when the
// register it is sensitive to is sixteen bits.
func widthCycles(defn instructions.Definition) int {
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return 0
	}
	if defn.Effect == instructions.Modify {
		return 2
	}
	return 1
}

// indexPenalty returns true if the instruction takes an extra cycle when the
// indexed address crosses a page or when the index registers are sixteen bits.
func indexPenalty(defn instructions.Definition) bool {
	if defn.Effect != instructions.Read {
		return false
	}
	switch defn.AddressingMode {
	case instructions.AbsoluteX, instructions.AbsoluteY, instructions.DirectIndirectIndexed:
		return true
	}
	return false
}
