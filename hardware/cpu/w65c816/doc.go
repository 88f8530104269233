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

// Package w65c816 emulates the WDC 65C816 CPU, the sixteen bit member of the
// 6502 family.
//
// The CPU reads and writes through the cpubus.LongMemory interface, which has
// a 24 bit address. The upper eight bits of an address are the bank. Program
// fetches use the program bank register (PBR) and most data accesses use the
// data bank register (DBR). Direct page and stack accesses are always in bank
// zero.
//
// After Reset() the CPU is in emulation mode, with eight bit registers and the
// stack pinned to page one, and the PC is loaded from the reset vector. The
// XCE instruction switches to native mode, where the M and X flags select the
// width of the accumulator and index registers. The width of the registers
// changes the number of bytes read by immediate instructions and the number of
// bytes moved by loads, stores and stack operations. The accessor functions,
// Accumulator(), IndexX() and so on, return the register at the current width.
//
// The instruction definitions are in definitions.csv. The cycle counts in the
// file are for emulation mode. The extra cycles for sixteen bit operands, for
// a direct page that is not page aligned, for page crossing and for taken
// branches are added at run time.
//
// WDM is executed as a two byte NOP and is reported to the diagnostics sink as
// an unknown opcode. STP is reported as a stopped diagnostic. Hardware
// interrupts are signalled with the Interrupt() function.
package w65c816
