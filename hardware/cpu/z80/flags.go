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

package z80

import "strings"

// Flags is the Z80 flags register. Bits 3 and 5 are the undocumented X and Y
// flags, which most instructions copy from their result.
type Flags uint8

// List of flag bits.
const (
	FlagC  Flags = 0x01
	FlagN  Flags = 0x02
	FlagPV Flags = 0x04
	FlagX  Flags = 0x08
	FlagH  Flags = 0x10
	FlagY  Flags = 0x20
	FlagZ  Flags = 0x40
	FlagS  Flags = 0x80
)

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

// String returns the flags in the order of the bits, most significant first.
// Upper case indicates that the flag is set.
func (f Flags) String() string {
	s := strings.Builder{}
	for i, r := range "SZYHXPNC" {
		if f&(0x80>>i) != 0 {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}
	return s.String()
}

// Is returns true if all the flags in the mask are set.
func (f Flags) Is(mask Flags) bool {
	return f&mask == mask
}

// set or clear the flags in the mask.
func (f *Flags) set(mask Flags, on bool) {
	if on {
		*f |= mask
	} else {
		*f &^= mask
	}
}

// undocumented flags taken from a value.
func xy(v uint8) Flags {
	return Flags(v) & (FlagX | FlagY)
}

// sign, zero and undocumented flags taken from a value.
func szxy(v uint8) Flags {
	f := xy(v) | Flags(v)&FlagS
	if v == 0 {
		f |= FlagZ
	}
	return f
}
