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

package w65c816

import (
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
)

func (mc *CPU) read8(address uint32) uint8 {
	return mc.mem.ReadLong(address & 0xffffff)
}

func (mc *CPU) write8(address uint32, v uint8) {
	mc.mem.WriteLong(address&0xffffff, v)
}

// next returns the address of the byte following address. addresses in bank
// zero that are formed from the direct page or stack pointer wrap at the end
// of the bank rather than crossing into bank one.
func next(address uint32, bank0 bool) uint32 {
	if bank0 {
		return uint32(uint16(address) + 1)
	}
	return (address + 1) & 0xffffff
}

// readData reads a one or two byte value beginning at address.
func (mc *CPU) readData(address uint32, w registers.Width, bank0 bool) uint16 {
	lo := mc.read8(address)
	if w == registers.Bits8 {
		return uint16(lo)
	}
	hi := mc.read8(next(address, bank0))
	return uint16(hi)<<8 | uint16(lo)
}

// writeData writes a one or two byte value beginning at address.
func (mc *CPU) writeData(address uint32, v uint16, w registers.Width, bank0 bool) {
	mc.write8(address, uint8(v))
	if w == registers.Bits16 {
		mc.write8(next(address, bank0), uint8(v>>8))
	}
}

func (mc *CPU) read16Bank0(address uint16) uint16 {
	return mc.readData(uint32(address), registers.Bits16, true)
}

// fetchByte reads the byte at the program counter. the program counter wraps
// within the program bank.
func (mc *CPU) fetchByte() uint8 {
	v := mc.read8(mc.ProgramCounter())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// read8BitPC reads an operand byte at the program counter. the byte is
// recorded in the InstructionData field of the result.
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

func (mc *CPU) read24BitPC() uint32 {
	lo := mc.read16BitPC()
	bank := mc.read8BitPC()
	return uint32(bank)<<16 | uint32(lo)
}

// readWidthPC reads a one or two byte immediate value.
func (mc *CPU) readWidthPC(w registers.Width) uint16 {
	if w == registers.Bits16 {
		return mc.read16BitPC()
	}
	return uint16(mc.read8BitPC())
}

// Push8 writes a byte to the stack and decrements the stack pointer.
func (mc *CPU) Push8(v uint8) {
	mc.write8(uint32(mc.S.Address()), v)
	mc.S.Decrement()
}

// Push16 pushes a word onto the stack, high byte first.
func (mc *CPU) Push16(v uint16) {
	mc.Push8(uint8(v >> 8))
	mc.Push8(uint8(v))
}

// Pull8 increments the stack pointer and reads a byte from the stack.
func (mc *CPU) Pull8() uint8 {
	mc.S.Increment()
	return mc.read8(uint32(mc.S.Address()))
}

// Pull16 pulls a word from the stack, low byte first.
func (mc *CPU) Pull16() uint16 {
	lo := mc.Pull8()
	hi := mc.Pull8()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push(v uint16, w registers.Width) {
	if w == registers.Bits16 {
		mc.Push16(v)
		return
	}
	mc.Push8(uint8(v))
}

func (mc *CPU) pull(w registers.Width) uint16 {
	if w == registers.Bits16 {
		return mc.Pull16()
	}
	return uint16(mc.Pull8())
}
