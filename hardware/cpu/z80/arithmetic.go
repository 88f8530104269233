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

package z80

import (
	"github.com/jetsetilly/gophercores/hardware/cpu/alu"
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
)

func (mc *CPU) add8(v uint8, carry bool) {
	r, f := alu.Compute(alu.Add, registers.Bits8, uint16(mc.A), uint16(v), carry)
	mc.A = uint8(r)
	mc.F = szxy(mc.A)
	mc.F.set(FlagH, f.HalfCarry)
	mc.F.set(FlagPV, f.Overflow)
	mc.F.set(FlagC, f.Carry)
}

// sub8 subtracts from the accumulator. if store is false the accumulator is
// not changed and the undocumented flags are taken from the operand.
func (mc *CPU) sub8(v uint8, borrow bool, store bool) {
	r, f := alu.Compute(alu.Subtract, registers.Bits8, uint16(mc.A), uint16(v), borrow)
	mc.F = szxy(uint8(r)) | FlagN
	if store {
		mc.A = uint8(r)
	} else {
		mc.F = mc.F&^(FlagX|FlagY) | xy(v)
	}
	mc.F.set(FlagH, f.HalfCarry)
	mc.F.set(FlagPV, f.Overflow)
	mc.F.set(FlagC, f.Borrow)
}

// logical sets the flags for AND, OR and XOR. only AND sets the half carry.
func (mc *CPU) logical(kind alu.Kind, v uint8) {
	r, f := alu.Compute(kind, registers.Bits8, uint16(mc.A), uint16(v), false)
	mc.A = uint8(r)
	mc.F = szxy(mc.A)
	mc.F.set(FlagPV, f.Parity)
	mc.F.set(FlagH, kind == alu.And)
}

// accumulator performs one of the eight accumulator operations encoded in
// bits 3 to 5 of the opcode.
func (mc *CPU) accumulator(op uint8, v uint8) {
	switch op {
	case 0:
		mc.add8(v, false)
	case 1:
		mc.add8(v, mc.F.Is(FlagC))
	case 2:
		mc.sub8(v, false, true)
	case 3:
		mc.sub8(v, mc.F.Is(FlagC), true)
	case 4:
		mc.logical(alu.And, v)
	case 5:
		mc.logical(alu.Xor, v)
	case 6:
		mc.logical(alu.Or, v)
	case 7:
		mc.sub8(v, false, false)
	}
}

// inc8 and dec8 do not affect the carry flag.
func (mc *CPU) inc8(v uint8) uint8 {
	r, f := alu.Compute(alu.Increment, registers.Bits8, uint16(v), 0, false)
	mc.F = mc.F&FlagC | szxy(uint8(r))
	mc.F.set(FlagH, f.HalfCarry)
	mc.F.set(FlagPV, f.Overflow)
	return uint8(r)
}

func (mc *CPU) dec8(v uint8) uint8 {
	r, f := alu.Compute(alu.Decrement, registers.Bits8, uint16(v), 0, false)
	mc.F = mc.F&FlagC | szxy(uint8(r)) | FlagN
	mc.F.set(FlagH, f.HalfCarry)
	mc.F.set(FlagPV, f.Overflow)
	return uint8(r)
}

// add16 is ADD HL,rr and its indexed equivalents. the sign, zero and parity
// flags are not affected.
func (mc *CPU) add16(a uint16, b uint16) uint16 {
	r := uint32(a) + uint32(b)
	mc.F = mc.F&(FlagS|FlagZ|FlagPV) | xy(uint8(r>>8))
	mc.F.set(FlagH, (a&0x0fff)+(b&0x0fff) > 0x0fff)
	mc.F.set(FlagC, r > 0xffff)
	return uint16(r)
}

func (mc *CPU) adc16(v uint16) {
	hl := mc.HL.Value()
	carry := mc.F.Is(FlagC)
	r, f := alu.Compute(alu.Add, registers.Bits16, hl, v, carry)
	mc.F = xy(uint8(r >> 8))
	mc.F.set(FlagS, f.Sign)
	mc.F.set(FlagZ, f.Zero)
	mc.F.set(FlagPV, f.Overflow)
	mc.F.set(FlagC, f.Carry)
	c := uint16(0)
	if carry {
		c = 1
	}
	mc.F.set(FlagH, (hl&0x0fff)+(v&0x0fff)+c > 0x0fff)
	mc.HL.Load(r)
}

func (mc *CPU) sbc16(v uint16) {
	hl := mc.HL.Value()
	borrow := mc.F.Is(FlagC)
	r, f := alu.Compute(alu.Subtract, registers.Bits16, hl, v, borrow)
	mc.F = xy(uint8(r>>8)) | FlagN
	mc.F.set(FlagS, f.Sign)
	mc.F.set(FlagZ, f.Zero)
	mc.F.set(FlagPV, f.Overflow)
	mc.F.set(FlagC, f.Borrow)
	c := 0
	if borrow {
		c = 1
	}
	mc.F.set(FlagH, int(hl&0x0fff)-int(v&0x0fff)-c < 0)
	mc.HL.Load(r)
}

// rotateA is RLCA, RRCA, RLA and RRA. the sign, zero and parity flags are not
// affected.
func (mc *CPU) rotateA(kind alu.Kind, carryIn bool) {
	r, f := alu.Compute(kind, registers.Bits8, uint16(mc.A), 0, carryIn)
	mc.A = uint8(r)
	mc.F = mc.F&(FlagS|FlagZ|FlagPV) | xy(mc.A)
	mc.F.set(FlagC, f.Carry)
}

// shift performs one of the eight rotate and shift operations of the CB
// prefixed instructions, encoded in bits 3 to 5 of the opcode.
func (mc *CPU) shift(op uint8, v uint8) uint8 {
	var r uint16
	var f alu.Flags

	switch op {
	case 0: // RLC
		r, f = alu.Compute(alu.RotateLeft, registers.Bits8, uint16(v), 0, v&0x80 == 0x80)
	case 1: // RRC
		r, f = alu.Compute(alu.RotateRight, registers.Bits8, uint16(v), 0, v&0x01 == 0x01)
	case 2: // RL
		r, f = alu.Compute(alu.RotateLeft, registers.Bits8, uint16(v), 0, mc.F.Is(FlagC))
	case 3: // RR
		r, f = alu.Compute(alu.RotateRight, registers.Bits8, uint16(v), 0, mc.F.Is(FlagC))
	case 4: // SLA
		r, f = alu.Compute(alu.ShiftLeft, registers.Bits8, uint16(v), 0, false)
	case 5: // SRA
		r, f = alu.Compute(alu.RotateRight, registers.Bits8, uint16(v), 0, v&0x80 == 0x80)
	case 6: // SLL
		r, f = alu.Compute(alu.RotateLeft, registers.Bits8, uint16(v), 0, true)
	case 7: // SRL
		r, f = alu.Compute(alu.ShiftRight, registers.Bits8, uint16(v), 0, false)
	}

	mc.F = szxy(uint8(r))
	mc.F.set(FlagPV, f.Parity)
	mc.F.set(FlagC, f.Carry)
	return uint8(r)
}

// bit tests bit b of v. the undocumented flags are taken from the xy
// argument, which depends on the addressing mode.
func (mc *CPU) bit(b uint8, v uint8, xyFrom uint8) {
	set := v&(1<<b) != 0
	mc.F = mc.F&FlagC | FlagH | xy(xyFrom)
	mc.F.set(FlagZ|FlagPV, !set)
	mc.F.set(FlagS, b == 7 && set)
}

// daa adjusts the accumulator after a BCD addition or subtraction.
func (mc *CPU) daa() {
	a := mc.A
	var correction uint8
	carry := mc.F.Is(FlagC)

	if mc.F.Is(FlagH) || a&0x0f > 9 {
		correction |= 0x06
	}
	if carry || a > 0x99 {
		correction |= 0x60
		carry = true
	}

	var h bool
	if mc.F.Is(FlagN) {
		mc.A = a - correction
		h = mc.F.Is(FlagH) && a&0x0f < 6
	} else {
		mc.A = a + correction
		h = a&0x0f > 9
	}

	mc.F = mc.F&FlagN | szxy(mc.A)
	mc.F.set(FlagPV, alu.Parity(mc.A))
	mc.F.set(FlagH, h)
	mc.F.set(FlagC, carry)
}

// flags after a value has been read from a port with IN r,(C) or moved
// between the accumulator and nibbles of memory with RRD and RLD.
func (mc *CPU) inFlags(v uint8) {
	mc.F = mc.F&FlagC | szxy(v)
	mc.F.set(FlagPV, alu.Parity(v))
}

// flags after LD A,I and LD A,R.
func (mc *CPU) irFlags() {
	mc.F = mc.F&FlagC | szxy(mc.A)
	mc.F.set(FlagPV, mc.IFF2)
}
