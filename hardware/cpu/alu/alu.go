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

package alu

import (
	"math/bits"

	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
)

// Kind of operation being performed by the ALU.
type Kind int

// List of valid Kind values.
const (
	Add Kind = iota
	Subtract
	Compare
	And
	Or
	Xor
	Increment
	Decrement
	ShiftLeft
	ShiftRight
	RotateLeft
	RotateRight
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Compare:
		return "compare"
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case ShiftLeft:
		return "shift left"
	case ShiftRight:
		return "shift right"
	case RotateLeft:
		return "rotate left"
	case RotateRight:
		return "rotate right"
	}
	return "unknown operation"
}

// Flags is the result of an ALU operation. Each CPU core decides which of
// these flags it copies into its own status register.
//
// Carry and Borrow are always opposites for Subtract and Compare. Carry
// follows the 6502 convention (carry set means no borrow) and Borrow follows
// the Intel convention. For all other operations Borrow is false.
type Flags struct {
	Carry     bool
	Borrow    bool
	Zero      bool
	Sign      bool
	Overflow  bool
	HalfCarry bool
	Parity    bool
}

// Compute performs the operation on a and b at the width. Returns the result,
// truncated to the width, and the flags.
//
// For Add the carryIn argument is the incoming carry. For Subtract it is the
// incoming borrow. Compare ignores carryIn. For RotateLeft and RotateRight it
// is the bit rotated into the result. For Increment and Decrement it is passed
// through to Flags.Carry unchanged. The b argument is ignored by the unary
// operations.
func Compute(kind Kind, w registers.Width, a, b uint16, carryIn bool) (uint16, Flags) {
	var f Flags
	var r uint16

	mask := w.Mask()
	sign := w.SignBit()
	a &= mask
	b &= mask

	var c uint16
	if carryIn {
		c = 1
	}

	switch kind {
	case Add:
		sum := uint32(a) + uint32(b) + uint32(c)
		r = uint16(sum) & mask
		f.Carry = sum > uint32(mask)
		f.Overflow = (^(a ^ b))&(a^r)&sign != 0
		f.HalfCarry = HalfCarryAdd(uint8(a), uint8(b), carryIn)

	case Subtract, Compare:
		if kind == Compare {
			c = 0
		}
		diff := int32(a) - int32(b) - int32(c)
		r = uint16(diff) & mask
		f.Borrow = diff < 0
		f.Carry = !f.Borrow
		f.Overflow = (a^b)&(a^r)&sign != 0
		f.HalfCarry = HalfCarrySub(uint8(a), uint8(b), c == 1)

	case And:
		r = a & b

	case Or:
		r = a | b

	case Xor:
		r = a ^ b

	case Increment:
		r = (a + 1) & mask
		f.Carry = carryIn
		f.Overflow = r == sign
		f.HalfCarry = a&0x0f == 0x0f

	case Decrement:
		r = (a - 1) & mask
		f.Carry = carryIn
		f.Overflow = r == sign-1
		f.HalfCarry = a&0x0f == 0x00

	case ShiftLeft:
		f.Carry = a&sign == sign
		r = (a << 1) & mask

	case ShiftRight:
		f.Carry = a&0x01 == 0x01
		r = a >> 1

	case RotateLeft:
		f.Carry = a&sign == sign
		r = ((a << 1) | c) & mask

	case RotateRight:
		f.Carry = a&0x01 == 0x01
		r = a >> 1
		if carryIn {
			r |= sign
		}
	}

	f.Zero = r == 0
	f.Sign = r&sign == sign
	f.Parity = bits.OnesCount16(r)%2 == 0

	return r, f
}

// Parity returns true if the number of set bits in v is even.
func Parity(v uint8) bool {
	return bits.OnesCount8(v)%2 == 0
}

// HalfCarryAdd returns true if adding the low nibbles of a and b (and the
// carry) produces a carry out of bit 3.
func HalfCarryAdd(a, b uint8, carry bool) bool {
	c := uint8(0)
	if carry {
		c = 1
	}
	return (a&0x0f)+(b&0x0f)+c > 0x0f
}

// HalfCarrySub returns true if subtracting the low nibble of b (and the
// borrow) from the low nibble of a needs a borrow from bit 4.
func HalfCarrySub(a, b uint8, borrow bool) bool {
	c := 0
	if borrow {
		c = 1
	}
	return int(a&0x0f)-int(b&0x0f)-c < 0
}
