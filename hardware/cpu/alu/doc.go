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

// Package alu computes the result of arithmetic and logical operations and
// the flags that result from them. The functions are pure and are keyed by the
// kind of operation rather than by opcode, so that the same formula is used by
// every instruction that performs the same kind of operation.
//
// The flag formulas that are particular to one CPU (the 8080 auxiliary carry
// for logical operations, the undocumented Z80 flags) are not the concern of
// this package.
package alu
