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

// Package z80 emulates the Zilog Z80 CPU.
//
// The CPU reads and writes through the cpubus.Memory interface. Port
// instructions use the cpubus.Ports interface if the memory implementation
// provides it. The port address is sixteen bits wide: IN A,(n) and OUT (n),A
// put the accumulator on the upper half of the address bus and the C register
// forms use BC.
//
// All four prefix spaces are implemented. CB prefixed instructions are the
// rotate, shift and bit instructions. ED prefixed instructions are the
// extended instructions, including the block transfer, search and I/O
// instructions. DD and FD select the IX and IY index registers in place of HL
// and DDCB/FDCB prefixed instructions are the indexed bit instructions. A DD
// or FD prefix in front of an instruction that has no indexed form costs four
// cycles and the instruction executes as normal.
//
// The undocumented flags (bits 3 and 5 of F) are set from instruction results
// in the same way as the real CPU. The undocumented IXH, IXL, IYH and IYL
// registers, SLL and the register copy of the indexed bit instructions are
// also supported.
//
// Undefined ED opcodes are two byte, eight cycle NOPs. Each one executed is
// reported to the diagnostics sink given to SetDiagnostics().
//
// A repeating block instruction executes one iteration per call to Step() by
// rewinding the PC to the start of the instruction. This means that an
// interrupt can be accepted between iterations.
package z80
