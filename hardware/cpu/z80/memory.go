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
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
)

// the refresh register counts opcode fetches. bit 7 is only ever changed by
// LD R,A.
func (mc *CPU) incrementR() {
	mc.R = (mc.R & 0x80) | ((mc.R + 1) & 0x7f)
}

// fetchOpcode reads an opcode or prefix byte at the PC.
func (mc *CPU) fetchOpcode() uint8 {
	mc.incrementR()
	return mc.fetchByte()
}

// fetchByte reads a byte at the PC that is part of the instruction but not an
// operand. the opcode of a DDCB or FDCB instruction is read this way.
func (mc *CPU) fetchByte() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// read8BitPC reads an operand byte at the PC. the byte is recorded in the
// InstructionData field of the result.
func (mc *CPU) read8BitPC() uint8 {
	v := mc.fetchByte()
	mc.LastResult.InstructionData |= uint32(v) << (8 * mc.operandBytes)
	mc.operandBytes++
	return v
}

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

// index returns the index register selected by the current prefix.
func (mc *CPU) index() *registers.Pair {
	if mc.useIY {
		return &mc.IY
	}
	return &mc.IX
}

// indexAddress reads the displacement byte and returns the effective address
// of an (IX+d) or (IY+d) operand.
func (mc *CPU) indexAddress() uint16 {
	d := int8(mc.read8BitPC())
	return mc.index().Value() + uint16(int16(d))
}

// register codes as encoded in the opcode.
const (
	regB = iota
	regC
	regD
	regE
	regH
	regL
	regHL
	regA
)

// reg returns the value of the register encoded in an opcode. Code 6 is the
// memory location addressed by HL.
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
	case regHL:
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
	case regHL:
		mc.mem.Write(mc.HL.Value(), v)
	default:
		mc.A = v
	}
}

// indexReg is the same as reg() except that H and L are the high and low
// halves of the current index register. code 6 is not valid.
func (mc *CPU) indexReg(r uint8) uint8 {
	switch r {
	case regH:
		return mc.index().Hi
	case regL:
		return mc.index().Lo
	}
	return mc.reg(r)
}

func (mc *CPU) setIndexReg(r uint8, v uint8) {
	switch r {
	case regH:
		mc.index().Hi = v
	case regL:
		mc.index().Lo = v
	default:
		mc.setReg(r, v)
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

// indexRP is the same as rp() except that pair 2 is the current index
// register.
func (mc *CPU) indexRP(code uint8) uint16 {
	if code == 2 {
		return mc.index().Value()
	}
	return mc.rp(code)
}

// condition returns the state of the condition encoded in an opcode.
func (mc *CPU) condition(cc uint8) bool {
	switch cc {
	case 0:
		return !mc.F.Is(FlagZ)
	case 1:
		return mc.F.Is(FlagZ)
	case 2:
		return !mc.F.Is(FlagC)
	case 3:
		return mc.F.Is(FlagC)
	case 4:
		return !mc.F.Is(FlagPV)
	case 5:
		return mc.F.Is(FlagPV)
	case 6:
		return !mc.F.Is(FlagS)
	}
	return mc.F.Is(FlagS)
}

func (mc *CPU) in(port uint16) uint8 {
	return cpubus.ReadPort(mc.mem, port)
}

func (mc *CPU) out(port uint16, v uint8) {
	cpubus.WritePort(mc.mem, port, v)
}
