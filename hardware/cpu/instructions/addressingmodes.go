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

// AddressingMode describes the method data for the instruction should be
// received. The list covers all of the CPU families. Not every CPU uses every
// mode.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative     // relative addressing is used for branch instructions
	RelativeLong // 65C816 BRL and PER

	// 65C816 (and 6502 family) memory modes
	Absolute                     // abs
	AbsoluteX                    // abs,X
	AbsoluteY                    // abs,Y
	AbsoluteLong                 // long
	AbsoluteLongX                // long,X
	AbsoluteIndirect             // (abs)
	AbsoluteIndirectLong         // [abs]
	AbsoluteIndexedIndirect      // (abs,X)
	Direct                       // dp
	DirectX                      // dp,X
	DirectY                      // dp,Y
	DirectIndirect               // (dp)
	DirectIndirectLong           // [dp]
	DirectIndexedIndirect        // (dp,X)
	DirectIndirectIndexed        // (dp),Y
	DirectIndirectLongIndexed    // [dp],Y
	StackRelative                // sr,S
	StackRelativeIndirectIndexed // (sr,S),Y
	BlockMove                    // MVN/MVP
	Stack                        // pushes, pulls and interrupts

	// Intel family modes
	Register         // register to register
	RegisterIndirect // memory addressed by a register pair
	ImmediateExtended
	Extended // memory addressed by a 16 bit operand
	Port
	Restart

	// Z80 modes
	Indexed // (IX+d) and (IY+d)
	Bit     // CB prefixed bit operations
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case RelativeLong:
		return "RelativeLong"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case AbsoluteLong:
		return "AbsoluteLong"
	case AbsoluteLongX:
		return "AbsoluteLongX"
	case AbsoluteIndirect:
		return "AbsoluteIndirect"
	case AbsoluteIndirectLong:
		return "AbsoluteIndirectLong"
	case AbsoluteIndexedIndirect:
		return "AbsoluteIndexedIndirect"
	case Direct:
		return "Direct"
	case DirectX:
		return "DirectX"
	case DirectY:
		return "DirectY"
	case DirectIndirect:
		return "DirectIndirect"
	case DirectIndirectLong:
		return "DirectIndirectLong"
	case DirectIndexedIndirect:
		return "DirectIndexedIndirect"
	case DirectIndirectIndexed:
		return "DirectIndirectIndexed"
	case DirectIndirectLongIndexed:
		return "DirectIndirectLongIndexed"
	case StackRelative:
		return "StackRelative"
	case StackRelativeIndirectIndexed:
		return "StackRelativeIndirectIndexed"
	case BlockMove:
		return "BlockMove"
	case Stack:
		return "Stack"
	case Register:
		return "Register"
	case RegisterIndirect:
		return "RegisterIndirect"
	case ImmediateExtended:
		return "ImmediateExtended"
	case Extended:
		return "Extended"
	case Port:
		return "Port"
	case Restart:
		return "Restart"
	case Indexed:
		return "Indexed"
	case Bit:
		return "Bit"
	}
	return "unknown addressing mode"
}

// IsDirect returns true if the addressing mode uses the 65C816 direct page.
func (m AddressingMode) IsDirect() bool {
	switch m {
	case Direct, DirectX, DirectY, DirectIndirect, DirectIndirectLong,
		DirectIndexedIndirect, DirectIndirectIndexed, DirectIndirectLongIndexed:
		return true
	}
	return false
}
