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

package registers

// the number of decimal digits in a value of width.
func digits(w Width) int {
	return w.Bytes() * 2
}

// AddDecimal adds two values as though they are packed BCD, one digit at a
// time. Returns the result, the new carry state and the overflow state.
//
// The overflow flag is taken from the result before the most significant digit
// has been decimal adjusted. This matches the behaviour of the 65C816.
func AddDecimal(a, b uint16, carry bool, w Width) (uint16, bool, bool) {
	var r uint16
	var overflow bool

	for i := 0; i < digits(w); i++ {
		shift := uint(i * 4)
		d := (a>>shift)&0x0f + (b>>shift)&0x0f
		if carry {
			d++
		}

		if i == digits(w)-1 {
			pre := (r | d<<shift) & w.Mask()
			overflow = (^(a ^ b))&(a^pre)&w.SignBit() != 0
		}

		carry = d > 9
		if carry {
			d = (d + 6) & 0x0f
		}

		r |= d << shift
	}

	return r & w.Mask(), carry, overflow
}

// SubtractDecimal subtracts b from a as though both values are packed BCD, one
// digit at a time. The carry argument and the returned carry follow the 6502
// convention. A carry of false indicates that there is a borrow.
//
// The overflow flag is computed from the binary subtraction.
func SubtractDecimal(a, b uint16, carry bool, w Width) (uint16, bool, bool) {
	var r uint16

	borrow := !carry
	bin := a - b
	if borrow {
		bin--
	}
	overflow := (a^b)&(a^bin)&w.SignBit() != 0

	for i := 0; i < digits(w); i++ {
		shift := uint(i * 4)
		d := int((a>>shift)&0x0f) - int((b>>shift)&0x0f)
		if borrow {
			d--
		}

		borrow = d < 0
		if borrow {
			d += 10
		}

		r |= uint16(d&0x0f) << shift
	}

	return r & w.Mask(), !borrow, overflow
}
