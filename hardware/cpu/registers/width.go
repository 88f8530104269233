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

// Width of a register or of an operand.
type Width int

// List of valid Width values.
const (
	Bits8 Width = iota
	Bits16
)

func (w Width) String() string {
	switch w {
	case Bits8:
		return "8bit"
	case Bits16:
		return "16bit"
	}
	return "unknown width"
}

// Mask returns the mask to apply to a value for the width.
func (w Width) Mask() uint16 {
	if w == Bits16 {
		return 0xffff
	}
	return 0x00ff
}

// SignBit returns the bit that indicates the sign of a value of the width.
func (w Width) SignBit() uint16 {
	if w == Bits16 {
		return 0x8000
	}
	return 0x0080
}

// Bytes returns the number of bytes in a value of the width.
func (w Width) Bytes() int {
	if w == Bits16 {
		return 2
	}
	return 1
}
