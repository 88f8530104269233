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

import (
	"fmt"
)

// Data is a 16 bit register that can be treated as an 8 bit register. Writing
// to the register as an 8 bit value preserves the upper byte.
type Data struct {
	value uint16
	label string
}

// NewData is the preferred method of initialisation for the Data register.
func NewData(val uint16, label string) Data {
	return Data{
		value: val,
		label: label,
	}
}

func (r Data) String() string {
	return fmt.Sprintf("%s=%04x", r.label, r.value)
}

// Label returns the name of the register.
func (r Data) Label() string {
	return r.label
}

// Value returns the value of the register at the specified width.
func (r Data) Value(w Width) uint16 {
	return r.value & w.Mask()
}

// Full returns the full 16 bit value of the register regardless of width.
func (r Data) Full() uint16 {
	return r.value
}

// Low returns the lower byte of the register.
func (r Data) Low() uint8 {
	return uint8(r.value)
}

// High returns the upper byte of the register.
func (r Data) High() uint8 {
	return uint8(r.value >> 8)
}

// IsZero checks if the register is zero at the specified width.
func (r Data) IsZero(w Width) bool {
	return r.value&w.Mask() == 0
}

// IsNegative checks the sign bit of the register at the specified width.
func (r Data) IsNegative(w Width) bool {
	return r.value&w.SignBit() == w.SignBit()
}

// Load value into register. If width is Bits8 only the lower byte of the
// register is changed.
func (r *Data) Load(val uint16, w Width) {
	if w == Bits8 {
		r.value = (r.value & 0xff00) | (val & 0x00ff)
		return
	}
	r.value = val
}

// SetLow sets the lower byte of the register.
func (r *Data) SetLow(v uint8) {
	r.value = (r.value & 0xff00) | uint16(v)
}

// SetHigh sets the upper byte of the register.
func (r *Data) SetHigh(v uint8) {
	r.value = (r.value & 0x00ff) | uint16(v)<<8
}
