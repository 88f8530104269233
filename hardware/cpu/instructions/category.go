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

package instructions

// Category of an instruction describes its effect.
type Category int

// List of valid Category values.
const (
	Read Category = iota
	Write
	Modify

	// the following three categories have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the branch and jump instructions. branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Sensitivity describes whether the size of the operand of an instruction
// depends on the current state of the CPU.
type Sensitivity int

// List of valid Sensitivity values.
const (
	// the operand size never changes
	Fixed Sensitivity = iota

	// the operand size follows the accumulator/memory width (the 65C816 M
	// flag)
	AccumulatorWidth

	// the operand size follows the index register width (the 65C816 X flag)
	IndexWidth
)

func (s Sensitivity) String() string {
	switch s {
	case Fixed:
		return "Fixed"
	case AccumulatorWidth:
		return "AccumulatorWidth"
	case IndexWidth:
		return "IndexWidth"
	}
	return "unknown sensitivity"
}
