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

// Package instructions defines the table entries used by the CPU cores to
// decode opcodes. Each core has one or more Table instances, one for each
// opcode space. The table records the operator, byte count, base cycle cost
// and addressing mode of every opcode, along with whether the operand size
// depends on the state of the CPU.
//
// The table does not execute anything. Each core pairs its tables with an
// equally sized table of functions.
package instructions
