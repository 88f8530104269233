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

import "fmt"

// Pair is two 8 bit registers that can also be used as a single 16 bit
// register. Hi is the most significant byte when used as a 16 bit register.
type Pair struct {
	Hi    uint8
	Lo    uint8
	label string
}

// NewPair is the preferred method of initialisation for the Pair type.
func NewPair(val uint16, label string) Pair {
	return Pair{
		Hi:    uint8(val >> 8),
		Lo:    uint8(val),
		label: label,
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%04x", p.label, p.Value())
}

// Label returns the name of the register pair.
func (p Pair) Label() string {
	return p.label
}

// Value returns the pair as a 16 bit value.
func (p Pair) Value() uint16 {
	return uint16(p.Hi)<<8 | uint16(p.Lo)
}

// Load a 16 bit value into the pair.
func (p *Pair) Load(val uint16) {
	p.Hi = uint8(val >> 8)
	p.Lo = uint8(val)
}

// Inc increments the pair as a 16 bit value, wrapping at 0xffff.
func (p *Pair) Inc() {
	p.Load(p.Value() + 1)
}

// Dec decrements the pair as a 16 bit value, wrapping at zero.
func (p *Pair) Dec() {
	p.Load(p.Value() - 1)
}
