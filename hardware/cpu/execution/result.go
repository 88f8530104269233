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

package execution

import (
	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began. for the 65C816 this
	// includes the program bank in bits 16 to 23
	Address uint32

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read during instruction decode, including any
	// prefix bytes
	ByteCount int

	// the number of cycles the instruction took
	Cycles int

	// the operand bytes of the instruction in the order they were read. the
	// first operand byte is in bits 0 to 7
	InstructionData uint32

	// the prefix bytes that selected the opcode space. zero if there is no
	// prefix. the Z80 DDCB space is recorded as 0xddcb
	Prefix uint16

	// a prefix byte was read but the opcode that followed it has no prefixed
	// form. the prefix is counted in ByteCount and Cycles but the definition
	// is for the unprefixed instruction
	IgnoredPrefix bool

	// whether a branch or conditional flow instruction was taken
	BranchSuccess bool

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
