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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gophercores/curated"
)

// Definition defines each instruction in the instruction set; one per opcode.
//
// For the Intel family CPUs the Operator field is the full instruction text,
// including register operands, with lower case placeholders for the operand
// data. For example, "LD (IX+d),n". The placeholders are: "nn" for a 16 bit
// value, "n" for an 8 bit value, "d" for an index displacement and "e" for a
// relative jump. For the 65C816 the Operator is the mnemonic only and the
// operand is described by the AddressingMode.
type Definition struct {
	OpCode         uint8
	Operator       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Sensitivity    Sensitivity
	Effect         Category

	// the maximum number of cycles the instruction can take. if it is zero
	// then the instruction always takes the number of cycles in the Cycles
	// field
	MaxCycles int

	// the opcode is not a documented instruction. the CPU will still execute
	// it but a diagnostic will be raised
	Unknown bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s sens=%s effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Sensitivity, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return (defn.AddressingMode == Relative || defn.AddressingMode == RelativeLong) && defn.Effect == Flow
}

// CycleRange returns the minimum and maximum number of cycles the instruction
// can take.
func (defn Definition) CycleRange() (int, int) {
	if defn.MaxCycles < defn.Cycles {
		return defn.Cycles, defn.Cycles
	}
	return defn.Cycles, defn.MaxCycles
}

// Table of definitions indexed by opcode.
type Table [256]Definition

// Lookup returns the definition for the opcode.
func (tab *Table) Lookup(opcode uint8) *Definition {
	return &tab[opcode]
}

// Validate checks that the table is consistent. Every entry must be filled in
// with the opcode matching its index and with a non-zero byte and cycle count.
func (tab *Table) Validate() error {
	for i := range tab {
		defn := tab[i]
		if defn.Operator == "" {
			return curated.Errorf("instructions: opcode %#02x has no definition", i)
		}
		if int(defn.OpCode) != i {
			return curated.Errorf("instructions: opcode %#02x is defined at index %#02x", defn.OpCode, i)
		}
		if defn.Bytes < 1 {
			return curated.Errorf("instructions: opcode %#02x [%s] has no bytes", i, defn.Operator)
		}
		if defn.Cycles < 1 {
			return curated.Errorf("instructions: opcode %#02x [%s] has no cycle cost", i, defn.Operator)
		}
		if defn.MaxCycles != 0 && defn.MaxCycles < defn.Cycles {
			return curated.Errorf("instructions: opcode %#02x [%s] has max cycles less than cycles", i, defn.Operator)
		}
	}
	return nil
}
