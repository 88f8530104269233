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
	"fmt"

	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
)

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%06x ???", r.Address)
	}
	return fmt.Sprintf("%06x %-20s %2d cycles", r.Address, r.Disassemble(), r.Cycles)
}

// Disassemble returns the instruction as it would be written in assembly
// language, with the operand taken from the InstructionData field.
func (r Result) Disassemble() string {
	if r.Defn == nil {
		return "???"
	}

	if hasPlaceholder(r.Defn.Operator) {
		return r.substitute()
	}

	operand := r.operand()
	if operand == "" {
		return r.Defn.Operator
	}
	return fmt.Sprintf("%s %s", r.Defn.Operator, operand)
}

func hasPlaceholder(op string) bool {
	for _, c := range op {
		if c >= 'a' && c <= 'z' {
			return true
		}
	}
	return false
}

// substitute replaces the placeholders in the operator with values from the
// instruction data.
func (r Result) substitute() string {
	op := r.Defn.Operator
	data := r.InstructionData
	next := func() uint8 {
		b := uint8(data)
		data >>= 8
		return b
	}

	s := make([]byte, 0, len(op)+8)
	for i := 0; i < len(op); i++ {
		switch {
		case op[i] == 'n' && i+1 < len(op) && op[i+1] == 'n':
			lo := next()
			hi := next()
			s = fmt.Appendf(s, "$%04x", uint16(hi)<<8|uint16(lo))
			i++
		case op[i] == 'n':
			s = fmt.Appendf(s, "$%02x", next())
		case op[i] == 'd':
			d := int8(next())
			if d < 0 && len(s) > 0 && s[len(s)-1] == '+' {
				s = s[:len(s)-1]
			}
			s = fmt.Appendf(s, "%d", d)
		case op[i] == 'e':
			e := int8(next())
			target := uint16(int(r.Address) + r.ByteCount + int(e))
			s = fmt.Appendf(s, "$%04x", target)
		default:
			s = append(s, op[i])
		}
	}

	return string(s)
}

// operand formats the instruction data according to the 65C816 addressing
// mode of the instruction.
func (r Result) operand() string {
	n := r.ByteCount - 1 - r.prefixBytes()
	v := r.InstructionData

	var value string
	switch n {
	case 1:
		value = fmt.Sprintf("$%02x", v&0xff)
	case 2:
		value = fmt.Sprintf("$%04x", v&0xffff)
	case 3:
		value = fmt.Sprintf("$%06x", v&0xffffff)
	}

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return "#" + value
	case instructions.Relative:
		target := uint16(int(r.Address) + r.ByteCount + int(int8(v)))
		return fmt.Sprintf("$%04x", target)
	case instructions.RelativeLong:
		target := uint16(int(r.Address) + r.ByteCount + int(int16(v)))
		return fmt.Sprintf("$%04x", target)
	case instructions.Absolute, instructions.AbsoluteLong, instructions.Direct:
		return value
	case instructions.AbsoluteX, instructions.AbsoluteLongX, instructions.DirectX:
		return value + ",X"
	case instructions.AbsoluteY, instructions.DirectY:
		return value + ",Y"
	case instructions.AbsoluteIndirect, instructions.DirectIndirect:
		return "(" + value + ")"
	case instructions.AbsoluteIndirectLong, instructions.DirectIndirectLong:
		return "[" + value + "]"
	case instructions.AbsoluteIndexedIndirect, instructions.DirectIndexedIndirect:
		return "(" + value + ",X)"
	case instructions.DirectIndirectIndexed:
		return "(" + value + "),Y"
	case instructions.DirectIndirectLongIndexed:
		return "[" + value + "],Y"
	case instructions.StackRelative:
		return value + ",S"
	case instructions.StackRelativeIndirectIndexed:
		return "(" + value + ",S),Y"
	case instructions.BlockMove:
		// the destination bank is the first operand byte but is written
		// second in assembly language
		return fmt.Sprintf("$%02x,$%02x", (v>>8)&0xff, v&0xff)
	case instructions.Stack:
		// PEA, PEI and the signature byte of BRK and COP
		return value
	}

	return ""
}

// prefixBytes returns the number of bytes in ByteCount that are prefixes
// rather than the opcode or operand.
func (r Result) prefixBytes() int {
	n := 0
	switch {
	case r.Prefix > 0xff:
		n = 2
	case r.Prefix > 0:
		n = 1
	}
	if r.IgnoredPrefix {
		n++
	}
	return n
}
