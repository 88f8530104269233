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

package cpubus

// Reset is the address where the reset address is stored. The 65C816 reads
// the vector from bank zero.
const Reset = uint16(0xfffc)

// Interrupt vectors for the 65C816 in native mode.
const (
	NativeCOP   = uint16(0xffe4)
	NativeBRK   = uint16(0xffe6)
	NativeAbort = uint16(0xffe8)
	NativeNMI   = uint16(0xffea)
	NativeIRQ   = uint16(0xffee)
)

// Interrupt vectors for the 65C816 in emulation mode. BRK shares the IRQ
// vector.
const (
	EmulationCOP   = uint16(0xfff4)
	EmulationAbort = uint16(0xfff8)
	EmulationNMI   = uint16(0xfffa)
	EmulationIRQ   = uint16(0xfffe)
)
