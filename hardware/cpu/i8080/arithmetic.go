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

package i8080

import (
	"github.com/jetsetilly/gophercores/hardware/cpu/alu"
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
)

func (mc *CPU) setSZP(f alu.Flags) {
	mc.Flags.Sign = f.Sign
	mc.Flags.Zero = f.Zero
	mc.Flags.Parity = f.Parity
}

func (mc *CPU) add(v uint8, carry bool) {
	r, f := alu.Compute(alu.Add, registers.Bits8, uint16(mc.A), uint16(v), carry)
	mc.A = uint8(r)
	mc.Flags.Carry = f.Carry
	mc.Flags.AuxCarry = f.HalfCarry
	mc.setSZP(f)
}

func (mc *CPU) sub(v uint8, borrow bool) {
	r, f := alu.Compute(alu.Subtract, registers.Bits8, uint16(mc.A), uint16(v), borrow)
	mc.A = uint8(r)
	mc.Flags.Carry = f.Borrow
	mc.Flags.AuxCarry = f.HalfCarry
	mc.setSZP(f)
}

func (mc *CPU) cmp(v uint8) {
	_, f := alu.Compute(alu.Compare, registers.Bits8, uint16(mc.A), uint16(v), false)
	mc.Flags.Carry = f.Borrow
	mc.Flags.AuxCarry = f.HalfCarry
	mc.setSZP(f)
}

// ana sets the auxiliary carry from bit 3 of the OR of the operands. the
// accumulator value is the value before the AND.
func (mc *CPU) ana(v uint8) {
	pre := mc.A
	r, f := alu.Compute(alu.And, registers.Bits8, uint16(mc.A), uint16(v), false)
	mc.A = uint8(r)
	mc.Flags.Carry = false
	mc.Flags.AuxCarry = (pre|v)&0x08 == 0x08
	mc.setSZP(f)
}

func (mc *CPU) logical(kind alu.Kind, v uint8) {
	r, f := alu.Compute(kind, registers.Bits8, uint16(mc.A), uint16(v), false)
	mc.A = uint8(r)
	mc.Flags.Carry = false
	mc.Flags.AuxCarry = false
	mc.setSZP(f)
}

// accumulator performs one of the eight accumulator operations encoded in
// bits 3 to 5 of the opcode.
func (mc *CPU) accumulator(op uint8, v uint8) {
	switch op {
	case 0:
		mc.add(v, false)
	case 1:
		mc.add(v, mc.Flags.Carry)
	case 2:
		mc.sub(v, false)
	case 3:
		mc.sub(v, mc.Flags.Carry)
	case 4:
		mc.ana(v)
	case 5:
		mc.logical(alu.Xor, v)
	case 6:
		mc.logical(alu.Or, v)
	case 7:
		mc.cmp(v)
	}
}

// inr and dcr do not affect the carry flag.
func (mc *CPU) inr(v uint8) uint8 {
	r, f := alu.Compute(alu.Increment, registers.Bits8, uint16(v), 0, false)
	mc.Flags.AuxCarry = f.HalfCarry
	mc.setSZP(f)
	return uint8(r)
}

func (mc *CPU) dcr(v uint8) uint8 {
	r, f := alu.Compute(alu.Decrement, registers.Bits8, uint16(v), 0, false)
	mc.Flags.AuxCarry = f.HalfCarry
	mc.setSZP(f)
	return uint8(r)
}

// rotate the accumulator. only the carry flag is affected.
func (mc *CPU) rotate(kind alu.Kind, carryIn bool) {
	r, f := alu.Compute(kind, registers.Bits8, uint16(mc.A), 0, carryIn)
	mc.A = uint8(r)
	mc.Flags.Carry = f.Carry
}

// daa adjusts the accumulator after a BCD addition. the correction is added
// through the normal add path and the carry is then set if it was already set
// or if the upper digit needed adjusting.
func (mc *CPU) daa() {
	var correction uint8
	carry := mc.Flags.Carry
	if mc.Flags.AuxCarry || mc.A&0x0f > 9 {
		correction |= 0x06
	}
	if carry || mc.A > 0x99 {
		correction |= 0x60
		carry = true
	}
	mc.add(correction, false)
	mc.Flags.Carry = carry
}

// dad adds a 16 bit value to HL. only the carry flag is affected.
func (mc *CPU) dad(v uint16) {
	r := uint32(mc.HL.Value()) + uint32(v)
	mc.Flags.Carry = r > 0xffff
	mc.HL.Load(uint16(r))
}
