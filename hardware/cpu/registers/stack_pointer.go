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

// StackPointer is a 16 bit stack pointer that can optionally be pinned to a
// single page of memory.
type StackPointer struct {
	value  uint16
	label  string
	pinned bool
	page   uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer. The StackPointer is not pinned to any page.
func NewStackPointer(val uint16, label string) StackPointer {
	return StackPointer{
		value: val,
		label: label,
	}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%s=%04x", sp.label, sp.value)
}

// Label returns the name of the stack pointer.
func (sp StackPointer) Label() string {
	return sp.label
}

// Address returns the current value of the stack pointer.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Pinned returns true if the stack pointer is pinned to a page.
func (sp StackPointer) Pinned() bool {
	return sp.pinned
}

// Load value into the stack pointer. If the stack pointer is pinned then the
// upper byte of the value is ignored.
func (sp *StackPointer) Load(val uint16) {
	if sp.pinned {
		sp.value = uint16(sp.page)<<8 | val&0x00ff
		return
	}
	sp.value = val
}

// Pin the stack pointer to the page. The upper byte of the stack pointer is
// changed immediately.
func (sp *StackPointer) Pin(page uint8) {
	sp.pinned = true
	sp.page = page
	sp.Load(sp.value)
}

// Unpin the stack pointer. The value of the stack pointer is not changed.
func (sp *StackPointer) Unpin() {
	sp.pinned = false
}

// Decrement the stack pointer by one.
func (sp *StackPointer) Decrement() {
	sp.Load(sp.value - 1)
}

// Increment the stack pointer by one.
func (sp *StackPointer) Increment() {
	sp.Load(sp.value + 1)
}
