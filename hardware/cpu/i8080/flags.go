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

package i8080

import (
	"strings"
)

// Flags is the 8080 flags register. When packed into a byte, bit 1 is always
// set and bits 3 and 5 are always clear.
type Flags struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// Label returns the canonical name for the flags register.
func (fl Flags) Label() string {
	return "F"
}

func (fl Flags) String() string {
	s := strings.Builder{}
	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}
	flag(fl.Sign, 'S')
	flag(fl.Zero, 'Z')
	s.WriteRune('0')
	flag(fl.AuxCarry, 'A')
	s.WriteRune('0')
	flag(fl.Parity, 'P')
	s.WriteRune('1')
	flag(fl.Carry, 'C')
	return s.String()
}

// Value packs the flags into a byte suitable for pushing onto the stack.
func (fl Flags) Value() uint8 {
	v := uint8(0x02)
	if fl.Sign {
		v |= 0x80
	}
	if fl.Zero {
		v |= 0x40
	}
	if fl.AuxCarry {
		v |= 0x10
	}
	if fl.Parity {
		v |= 0x04
	}
	if fl.Carry {
		v |= 0x01
	}
	return v
}

// FromValue unpacks a byte (taken from the stack, for example) into the
// flags. The fixed bits are ignored.
func (fl *Flags) FromValue(v uint8) {
	fl.Sign = v&0x80 == 0x80
	fl.Zero = v&0x40 == 0x40
	fl.AuxCarry = v&0x10 == 0x10
	fl.Parity = v&0x04 == 0x04
	fl.Carry = v&0x01 == 0x01
}
