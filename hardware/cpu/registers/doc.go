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

// Package registers implements the registers found in the CPU cores. The
// registers do not know anything about flags. Flag computation is done by the
// alu package and the result is loaded into the register by the CPU.
//
// The Data type is a 16 bit register that can be accessed at either 8 or 16
// bits. When loaded at 8 bits, the upper byte of the register is untouched.
// This is how the 65C816 accumulator and index registers behave:
//
//	c.Load(0x1234, registers.Bits16)
//	c.Load(0xff, registers.Bits8)
//	c.Full() == 0x12ff
//
// The Pair type is a pair of 8 bit registers that can also be used as a single
// 16 bit register. The 8080 and Z80 register pairs are of this type.
//
// The StackPointer can be pinned to a page. A pinned stack pointer wraps within
// that page. The 65C816 pins the stack pointer to page one when it is in
// emulation mode.
package registers
