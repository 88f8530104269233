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

// Package i8080 emulates the Intel 8080 CPU.
//
// The CPU reads and writes through the cpubus.Memory interface. If the memory
// implementation also satisfies cpubus.Ports then the IN and OUT instructions
// are directed to it. Otherwise IN reads cpubus.Unconnected and OUT does
// nothing.
//
// Each call to Step() executes one complete instruction and returns the
// number of cycles consumed. The result of the step is available in the
// LastResult field. Conditional calls and returns take longer when the
// condition is met.
//
// The twelve unused opcodes are executed as a one byte, four cycle NOP. Each
// execution of an unused opcode is reported to the diagnostics sink given to
// SetDiagnostics().
//
// The CPU has no reset vector. After Reset() every register is zero and
// execution begins at address zero with interrupts disabled.
package i8080
