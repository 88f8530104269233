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
	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
)

// operand is the result of resolving the addressing mode of an instruction.
type operand struct {
	// the effective address. only meaningful for modes that refer to memory
	address uint32

	// the address was formed from the direct page or the stack pointer and
	// must wrap within bank zero
	bank0 bool

	// the immediate value, the branch offset or the value read from memory
	value uint16

	// the sixteen bit value read through a direct or absolute operand. used
	// by PEA and PEI
	pointer uint16

	// the source and destination banks of a block move
	src uint8
	dst uint8

	// the indexed address is on a different page to the base address
	pageCrossed bool
}

func (mc *CPU) dataBank(a uint16) uint32 {
	return uint32(mc.DBR)<<16 | uint32(a)
}

func indexed(base uint32, index uint16) (uint32, bool) {
	a := (base + uint32(index)) & 0xffffff
	return a, base>>8 != a>>8
}

// direct returns the address of an offset into the direct page. in emulation
// mode with the low byte of D at zero the address wraps within the page.
func (mc *CPU) direct(offset uint8, index uint16) uint32 {
	if mc.Emulation && mc.D&0x00ff == 0x0000 {
		return uint32(mc.D | uint16(uint8(uint16(offset)+index)))
	}
	return uint32(mc.D + uint16(offset) + index)
}

// directNext is the equivalent of next() for pointers in the direct page.
func (mc *CPU) directNext(address uint32) uint32 {
	if mc.Emulation && mc.D&0x00ff == 0x0000 {
		return address&0xff00 | (address+1)&0x00ff
	}
	return next(address, true)
}

// directPointer reads a sixteen bit pointer from the direct page.
func (mc *CPU) directPointer(address uint32) uint16 {
	lo := mc.read8(address)
	hi := mc.read8(mc.directNext(address))
	return uint16(hi)<<8 | uint16(lo)
}

// directPointerLong reads a 24 bit pointer from the direct page.
func (mc *CPU) directPointerLong(address uint32) uint32 {
	p := mc.directPointer(address)
	bank := mc.read8(mc.directNext(mc.directNext(address)))
	return uint32(bank)<<16 | uint32(p)
}

// bankPointer reads a sixteen bit pointer that wraps within the bank.
func (mc *CPU) bankPointer(bank uint8, address uint16) uint16 {
	lo := mc.read8(uint32(bank)<<16 | uint32(address))
	hi := mc.read8(uint32(bank)<<16 | uint32(address+1))
	return uint16(hi)<<8 | uint16(lo)
}

// resolve reads the operand bytes of the instruction and forms the effective
// address according to the addressing mode. the value field is filled in for
// the immediate and relative modes only.
func (mc *CPU) resolve(defn *instructions.Definition, w registers.Width) operand {
	var op operand

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Stack:
		// BRK and COP read their signature byte as part of execution

	case instructions.Immediate:
		op.value = mc.readWidthPC(w)

	case instructions.Relative:
		op.value = uint16(mc.read8BitPC())

	case instructions.RelativeLong:
		op.value = mc.read16BitPC()

	case instructions.Absolute:
		a := mc.read16BitPC()
		op.pointer = a
		switch defn.Effect {
		case instructions.Flow, instructions.Subroutine:
			op.address = uint32(mc.PBR)<<16 | uint32(a)
		default:
			op.address = mc.dataBank(a)
		}

	case instructions.AbsoluteX:
		op.address, op.pageCrossed = indexed(mc.dataBank(mc.read16BitPC()), mc.IndexX())

	case instructions.AbsoluteY:
		op.address, op.pageCrossed = indexed(mc.dataBank(mc.read16BitPC()), mc.IndexY())

	case instructions.AbsoluteLong:
		op.address = mc.read24BitPC()

	case instructions.AbsoluteLongX:
		op.address, _ = indexed(mc.read24BitPC(), mc.IndexX())

	case instructions.AbsoluteIndirect:
		p := mc.read16BitPC()
		op.address = uint32(mc.PBR)<<16 | uint32(mc.bankPointer(0, p))

	case instructions.AbsoluteIndirectLong:
		p := mc.read16BitPC()
		bank := mc.read8(uint32(p + 2))
		op.address = uint32(bank)<<16 | uint32(mc.bankPointer(0, p))

	case instructions.AbsoluteIndexedIndirect:
		p := mc.read16BitPC() + mc.IndexX()
		op.address = uint32(mc.PBR)<<16 | uint32(mc.bankPointer(mc.PBR, p))

	case instructions.Direct:
		op.address = mc.direct(mc.read8BitPC(), 0)
		op.bank0 = true

	case instructions.DirectX:
		op.address = mc.direct(mc.read8BitPC(), mc.IndexX())
		op.bank0 = true

	case instructions.DirectY:
		op.address = mc.direct(mc.read8BitPC(), mc.IndexY())
		op.bank0 = true

	case instructions.DirectIndirect:
		op.pointer = mc.directPointer(mc.direct(mc.read8BitPC(), 0))
		op.address = mc.dataBank(op.pointer)

	case instructions.DirectIndirectLong:
		op.address = mc.directPointerLong(mc.direct(mc.read8BitPC(), 0))

	case instructions.DirectIndexedIndirect:
		p := mc.directPointer(mc.direct(mc.read8BitPC(), mc.IndexX()))
		op.address = mc.dataBank(p)

	case instructions.DirectIndirectIndexed:
		p := mc.directPointer(mc.direct(mc.read8BitPC(), 0))
		op.address, op.pageCrossed = indexed(mc.dataBank(p), mc.IndexY())

	case instructions.DirectIndirectLongIndexed:
		p := mc.directPointerLong(mc.direct(mc.read8BitPC(), 0))
		op.address, _ = indexed(p, mc.IndexY())

	case instructions.StackRelative:
		op.address = uint32(mc.S.Address() + uint16(mc.read8BitPC()))
		op.bank0 = true

	case instructions.StackRelativeIndirectIndexed:
		p := mc.S.Address() + uint16(mc.read8BitPC())
		op.address, _ = indexed(mc.dataBank(mc.bankPointer(0, p)), mc.IndexY())

	case instructions.BlockMove:
		op.dst = mc.read8BitPC()
		op.src = mc.read8BitPC()
	}

	return op
}

// hasMemoryOperand returns true if the addressing mode refers to memory.
func hasMemoryOperand(mode instructions.AddressingMode) bool {
	switch mode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate,
		instructions.Relative, instructions.RelativeLong, instructions.Stack,
		instructions.BlockMove:
		return false
	}
	return true
}
