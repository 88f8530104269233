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
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
)

// read8BitPC reads the byte at the PC and advances the PC. Bytes after the
// opcode are recorded in the InstructionData field of the result.
func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	if mc.LastResult.ByteCount > 0 {
		mc.LastResult.InstructionData |= uint32(v) << (8 * (mc.LastResult.ByteCount - 1))
	}
	mc.LastResult.ByteCount++
	return v
}

// read16BitPC reads a little-endian 16 bit value at the PC.
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write16Bit(address uint16, v uint16) {
	mc.mem.Write(address, uint8(v))
	mc.mem.Write(address+1, uint8(v>>8))
}

// push16 pushes the high byte first so that the value is little-endian in
// memory.
func (mc *CPU) push16(v uint16) {
	mc.SP.Decrement()
	mc.mem.Write(mc.SP.Address(), uint8(v>>8))
	mc.SP.Decrement()
	mc.mem.Write(mc.SP.Address(), uint8(v))
}

func (mc *CPU) pop16() uint16 {
	lo := mc.mem.Read(mc.SP.Address())
	mc.SP.Increment()
	hi := mc.mem.Read(mc.SP.Address())
	mc.SP.Increment()
	return uint16(hi)<<8 | uint16(lo)
}

// register codes as encoded in the opcode.
const (
	regB = iota
	regC
	regD
	regE
	regH
	regL
	regM
	regA
)

// reg returns the value of the register encoded in an opcode. Register M is
// the memory location addressed by HL.
func (mc *CPU) reg(r uint8) uint8 {
	switch r {
	case regB:
		return mc.BC.Hi
	case regC:
		return mc.BC.Lo
	case regD:
		return mc.DE.Hi
	case regE:
		return mc.DE.Lo
	case regH:
		return mc.HL.Hi
	case regL:
		return mc.HL.Lo
	case regM:
		return mc.mem.Read(mc.HL.Value())
	}
	return mc.A
}

func (mc *CPU) setReg(r uint8, v uint8) {
	switch r {
	case regB:
		mc.BC.Hi = v
	case regC:
		mc.BC.Lo = v
	case regD:
		mc.DE.Hi = v
	case regE:
		mc.DE.Lo = v
	case regH:
		mc.HL.Hi = v
	case regL:
		mc.HL.Lo = v
	case regM:
		mc.mem.Write(mc.HL.Value(), v)
	default:
		mc.A = v
	}
}

// pair returns the register pair encoded in an opcode. Pair 3 is the stack
// pointer and is not returned by this function.
func (mc *CPU) pair(code uint8) *registers.Pair {
	switch code {
	case 0:
		return &mc.BC
	case 1:
		return &mc.DE
	}
	return &mc.HL
}

// rp returns the value of the register pair encoded in an opcode, with pair 3
// being the stack pointer.
func (mc *CPU) rp(code uint8) uint16 {
	if code == 3 {
		return mc.SP.Address()
	}
	return mc.pair(code).Value()
}

func (mc *CPU) setRP(code uint8, v uint16) {
	if code == 3 {
		mc.SP.Load(v)
		return
	}
	mc.pair(code).Load(v)
}

// condition returns the state of the condition encoded in an opcode.
func (mc *CPU) condition(cc uint8) bool {
	switch cc {
	case 0:
		return !mc.Flags.Zero
	case 1:
		return mc.Flags.Zero
	case 2:
		return !mc.Flags.Carry
	case 3:
		return mc.Flags.Carry
	case 4:
		return !mc.Flags.Parity
	case 5:
		return mc.Flags.Parity
	case 6:
		return !mc.Flags.Sign
	}
	return mc.Flags.Sign
}
