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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
	"github.com/jetsetilly/gophercores/test"
)

func TestDecimalModeCarry(t *testing.T) {
	var r uint16
	var carry bool

	// addition without carry
	r, carry, _ = registers.AddDecimal(0x00, 0x01, false, registers.Bits8)
	test.ExpectEquality(t, r, uint16(0x01))
	test.ExpectFailure(t, carry)

	// addition with carry
	r, carry, _ = registers.AddDecimal(r, 0x01, true, registers.Bits8)
	test.ExpectEquality(t, r, uint16(0x03))
	test.ExpectFailure(t, carry)

	// subtraction with carry (subtract value)
	r, _, _ = registers.SubtractDecimal(0x09, 0x01, true, registers.Bits8)
	test.ExpectEquality(t, r, uint16(0x08))

	// subtraction without carry (subtract value and another 1)
	r, _, _ = registers.SubtractDecimal(r, 0x01, false, registers.Bits8)
	test.ExpectEquality(t, r, uint16(0x06))

	// addition on tens boundary
	r, _, _ = registers.AddDecimal(0x09, 0x01, false, registers.Bits8)
	test.ExpectEquality(t, r, uint16(0x10))

	// subtraction on tens boundary
	r, _, _ = registers.SubtractDecimal(r, 0x01, true, registers.Bits8)
	test.ExpectEquality(t, r, uint16(0x09))

	// addition on hundreds boundary
	r, carry, _ = registers.AddDecimal(0x99, 0x01, false, registers.Bits8)
	test.ExpectEquality(t, r, uint16(0x00))
	test.ExpectSuccess(t, carry)

	// subtraction on hundreds boundary
	r, carry, _ = registers.SubtractDecimal(r, 0x01, true, registers.Bits8)
	test.ExpectEquality(t, r, uint16(0x99))
	test.ExpectFailure(t, carry)
}

func TestDecimalModeWide(t *testing.T) {
	r, carry, _ := registers.AddDecimal(0x1999, 0x0001, false, registers.Bits16)
	test.ExpectEquality(t, r, uint16(0x2000))
	test.ExpectFailure(t, carry)

	r, carry, _ = registers.AddDecimal(0x9999, 0x0001, false, registers.Bits16)
	test.ExpectEquality(t, r, uint16(0x0000))
	test.ExpectSuccess(t, carry)

	r, carry, _ = registers.SubtractDecimal(0x1000, 0x0001, true, registers.Bits16)
	test.ExpectEquality(t, r, uint16(0x0999))
	test.ExpectSuccess(t, carry)

	r, carry, _ = registers.SubtractDecimal(0x0000, 0x0001, true, registers.Bits16)
	test.ExpectEquality(t, r, uint16(0x9999))
	test.ExpectFailure(t, carry)
}

func TestDecimalModeOverflow(t *testing.T) {
	// 0x79 + 0x01 crosses from positive to negative before the tens digit is
	// adjusted
	_, _, overflow := registers.AddDecimal(0x79, 0x01, false, registers.Bits8)
	test.ExpectSuccess(t, overflow)

	_, _, overflow = registers.AddDecimal(0x10, 0x10, false, registers.Bits8)
	test.ExpectFailure(t, overflow)

	// 0x80 - 0x01 in binary is 0x7f which is an overflow
	_, _, overflow = registers.SubtractDecimal(0x80, 0x01, true, registers.Bits8)
	test.ExpectSuccess(t, overflow)
}
