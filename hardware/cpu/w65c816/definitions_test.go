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
	"strings"
	"testing"

	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
	"github.com/jetsetilly/gophercores/test"
)

func TestDefinitions(t *testing.T) {
	test.ExpectSuccess(t, definitions.Validate())

	// WDM is the only unknown opcode
	var unknown int
	for i := range definitions {
		if definitions[i].Unknown {
			unknown++
			test.ExpectEquality(t, definitions[i].Operator, WDM)
		}
	}
	test.ExpectEquality(t, unknown, 1)

	lda := definitions.Lookup(0xbd)
	test.ExpectEquality(t, lda.Operator, LDA)
	test.ExpectEquality(t, lda.AddressingMode, instructions.AbsoluteX)
	test.ExpectEquality(t, lda.Sensitivity, instructions.AccumulatorWidth)
	lo, hi := lda.CycleRange()
	test.ExpectEquality(t, lo, 4)
	test.ExpectEquality(t, hi, 6)

	lo, hi = definitions.Lookup(0xd0).CycleRange()
	test.ExpectEquality(t, lo, 2)
	test.ExpectEquality(t, hi, 4)

	lo, hi = definitions.Lookup(0x80).CycleRange()
	test.ExpectEquality(t, lo, 3)
	test.ExpectEquality(t, hi, 4)

	// read-modify-write instructions take two cycles more at sixteen bits
	lo, hi = definitions.Lookup(0x06).CycleRange()
	test.ExpectEquality(t, lo, 5)
	test.ExpectEquality(t, hi, 8)

	// JSR always takes six cycles
	lo, hi = definitions.Lookup(0x20).CycleRange()
	test.ExpectEquality(t, lo, 6)
	test.ExpectEquality(t, hi, 6)

	test.ExpectFailure(t, definitions.Lookup(0x54).IsBranch())
	test.ExpectSuccess(t, definitions.Lookup(0x82).IsBranch())
}

func TestParseDefinitions(t *testing.T) {
	var tab instructions.Table

	err := parseDefinitions(strings.NewReader("0xea, NOP, 1, 2, IMPLIED, READ\n"), &tab)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tab[0xea].Operator, NOP)

	err = parseDefinitions(strings.NewReader("0xea, NOP, 1, 2, NOWHERE, READ\n"), &tab)
	test.ExpectFailure(t, err)

	err = parseDefinitions(strings.NewReader("0xea, NOP, 1, 2, IMPLIED, READ, Q\n"), &tab)
	test.ExpectFailure(t, err)

	err = parseDefinitions(strings.NewReader("0x100, NOP, 1, 2, IMPLIED, READ\n"), &tab)
	test.ExpectFailure(t, err)

	err = parseDefinitions(strings.NewReader("0xea, NOP, 1\n"), &tab)
	test.ExpectFailure(t, err)
}
