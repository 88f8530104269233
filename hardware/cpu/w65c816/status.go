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

import "fmt"

// StatusRegister is the P register of the 65C816. In emulation mode the
// MemorySelect and IndexSelect bits are always set. When pushed to the stack
// in emulation mode bit 4 is the break flag.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	MemorySelect     bool
	IndexSelect      bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	return fmt.Sprintf("%s=%s", sr.Label(), sr.ToBits())
}

// ToBits returns the register as a labelled bit pattern.
func (sr StatusRegister) ToBits() string {
	bits := []struct {
		set bool
		on  byte
		off byte
	}{
		{sr.Sign, 'N', 'n'},
		{sr.Overflow, 'V', 'v'},
		{sr.MemorySelect, 'M', 'm'},
		{sr.IndexSelect, 'X', 'x'},
		{sr.DecimalMode, 'D', 'd'},
		{sr.InterruptDisable, 'I', 'i'},
		{sr.Zero, 'Z', 'z'},
		{sr.Carry, 'C', 'c'},
	}

	v := make([]byte, 0, len(bits))
	for _, b := range bits {
		if b.set {
			v = append(v, b.on)
		} else {
			v = append(v, b.off)
		}
	}
	return string(v)
}

// Value converts the StatusRegister into a value suitable for pushing onto
// the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.MemorySelect {
		v |= 0x20
	}
	if sr.IndexSelect {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// Load sets the status register from an eight bit value. The CPU is
// responsible for applying the restrictions of emulation mode.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.MemorySelect = v&0x20 == 0x20
	sr.IndexSelect = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
