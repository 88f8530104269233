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
	"github.com/jetsetilly/gophercores/diagnostics"
	"github.com/jetsetilly/gophercores/hardware/cpu/alu"
	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
)

// width returns the operand width of the instruction in the current CPU
// state.
func (mc *CPU) width(defn *instructions.Definition) registers.Width {
	switch defn.Sensitivity {
	case instructions.AccumulatorWidth:
		return mc.AccumulatorWidth()
	case instructions.IndexWidth:
		return mc.IndexWidth()
	}
	return registers.Bits8
}

// execute decodes and executes the instruction at the program counter.
func (mc *CPU) execute() {
	opcode := mc.fetchByte()
	defn := definitions.Lookup(opcode)
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	w := mc.width(defn)
	if w == registers.Bits16 {
		mc.LastResult.Cycles += widthCycles(*defn)
	}

	op := mc.resolve(defn, w)

	if defn.AddressingMode.IsDirect() && mc.D&0x00ff != 0x0000 {
		mc.LastResult.Cycles++
	}

	if indexPenalty(*defn) && (op.pageCrossed || mc.IndexWidth() == registers.Bits16) {
		mc.LastResult.Cycles++
	}

	if hasMemoryOperand(defn.AddressingMode) {
		switch defn.Effect {
		case instructions.Read, instructions.Modify:
			op.value = mc.readData(op.address, w, op.bank0)
		}
	}

	switch defn.Operator {
	case NOP:

	case WDM:
		mc.diag.Diagnose(diagnostics.Diagnostic{
			Core:    coreName,
			Kind:    diagnostics.UnknownOpcode,
			Address: mc.LastResult.Address,
			Opcode:  []uint8{opcode, uint8(op.value)},
		})

	// flags
	case CLC:
		mc.Status.Carry = false
	case SEC:
		mc.Status.Carry = true
	case CLD:
		mc.Status.DecimalMode = false
	case SED:
		mc.Status.DecimalMode = true
	case CLI:
		mc.Status.InterruptDisable = false
	case SEI:
		mc.Status.InterruptDisable = true
	case CLV:
		mc.Status.Overflow = false
	case REP:
		mc.SetStatus(mc.Status.Value() &^ uint8(op.value))
	case SEP:
		mc.SetStatus(mc.Status.Value() | uint8(op.value))
	case XCE:
		carry := mc.Status.Carry
		mc.Status.Carry = mc.Emulation
		mc.SetEmulation(carry)

	// loads and stores
	case LDA:
		mc.SetAccumulator(op.value)
		mc.setNZ(op.value, w)
	case LDX:
		mc.SetIndexX(op.value)
		mc.setNZ(op.value, w)
	case LDY:
		mc.SetIndexY(op.value)
		mc.setNZ(op.value, w)
	case STA:
		mc.writeData(op.address, mc.Accumulator(), w, op.bank0)
	case STX:
		mc.writeData(op.address, mc.IndexX(), w, op.bank0)
	case STY:
		mc.writeData(op.address, mc.IndexY(), w, op.bank0)
	case STZ:
		mc.writeData(op.address, 0, w, op.bank0)

	// arithmetic and logic
	case ADC:
		mc.adc(op.value, w)
	case SBC:
		mc.sbc(op.value, w)
	case AND:
		mc.logical(alu.And, op.value, w)
	case ORA:
		mc.logical(alu.Or, op.value, w)
	case EOR:
		mc.logical(alu.Xor, op.value, w)
	case CMP:
		mc.compare(mc.Accumulator(), op.value, w)
	case CPX:
		mc.compare(mc.IndexX(), op.value, w)
	case CPY:
		mc.compare(mc.IndexY(), op.value, w)

	case BIT:
		mc.Status.Zero = mc.Accumulator()&op.value == 0
		if defn.AddressingMode != instructions.Immediate {
			mc.Status.Sign = op.value&w.SignBit() != 0
			mc.Status.Overflow = op.value&(w.SignBit()>>1) != 0
		}
	case TSB:
		mc.Status.Zero = mc.Accumulator()&op.value == 0
		mc.writeData(op.address, op.value|mc.Accumulator(), w, op.bank0)
	case TRB:
		mc.Status.Zero = mc.Accumulator()&op.value == 0
		mc.writeData(op.address, op.value&^mc.Accumulator(), w, op.bank0)

	// read-modify-write
	case ASL:
		mc.modify(defn, op, w, mc.shifter(alu.ShiftLeft, w))
	case LSR:
		mc.modify(defn, op, w, mc.shifter(alu.ShiftRight, w))
	case ROL:
		mc.modify(defn, op, w, mc.shifter(alu.RotateLeft, w))
	case ROR:
		mc.modify(defn, op, w, mc.shifter(alu.RotateRight, w))
	case INC:
		mc.modify(defn, op, w, func(v uint16) uint16 { return (v + 1) & w.Mask() })
	case DEC:
		mc.modify(defn, op, w, func(v uint16) uint16 { return (v - 1) & w.Mask() })
	case INX:
		mc.SetIndexX(mc.IndexX() + 1)
		mc.setNZ(mc.IndexX(), w)
	case INY:
		mc.SetIndexY(mc.IndexY() + 1)
		mc.setNZ(mc.IndexY(), w)
	case DEX:
		mc.SetIndexX(mc.IndexX() - 1)
		mc.setNZ(mc.IndexX(), w)
	case DEY:
		mc.SetIndexY(mc.IndexY() - 1)
		mc.setNZ(mc.IndexY(), w)

	// transfers
	case TAX:
		mc.SetIndexX(mc.C.Full())
		mc.setNZ(mc.IndexX(), mc.IndexWidth())
	case TAY:
		mc.SetIndexY(mc.C.Full())
		mc.setNZ(mc.IndexY(), mc.IndexWidth())
	case TXA:
		mc.SetAccumulator(mc.X.Full())
		mc.setNZ(mc.Accumulator(), mc.AccumulatorWidth())
	case TYA:
		mc.SetAccumulator(mc.Y.Full())
		mc.setNZ(mc.Accumulator(), mc.AccumulatorWidth())
	case TXY:
		mc.SetIndexY(mc.X.Full())
		mc.setNZ(mc.IndexY(), mc.IndexWidth())
	case TYX:
		mc.SetIndexX(mc.Y.Full())
		mc.setNZ(mc.IndexX(), mc.IndexWidth())
	case TSX:
		mc.SetIndexX(mc.S.Address())
		mc.setNZ(mc.IndexX(), mc.IndexWidth())
	case TXS:
		mc.S.Load(mc.X.Full())
	case TCS:
		mc.S.Load(mc.C.Full())
	case TSC:
		mc.C.Load(mc.S.Address(), registers.Bits16)
		mc.setNZ(mc.C.Full(), registers.Bits16)
	case TCD:
		mc.D = mc.C.Full()
		mc.setNZ(mc.D, registers.Bits16)
	case TDC:
		mc.C.Load(mc.D, registers.Bits16)
		mc.setNZ(mc.D, registers.Bits16)
	case XBA:
		lo := mc.C.Low()
		mc.C.SetLow(mc.C.High())
		mc.C.SetHigh(lo)
		mc.setNZ(uint16(mc.C.Low()), registers.Bits8)

	// stack
	case PHA:
		mc.push(mc.Accumulator(), w)
	case PHX:
		mc.push(mc.IndexX(), w)
	case PHY:
		mc.push(mc.IndexY(), w)
	case PHP:
		mc.Push8(mc.Status.Value())
	case PHB:
		mc.Push8(mc.DBR)
	case PHK:
		mc.Push8(mc.PBR)
	case PHD:
		mc.Push16(mc.D)
	case PLA:
		mc.SetAccumulator(mc.pull(w))
		mc.setNZ(mc.Accumulator(), w)
	case PLX:
		mc.SetIndexX(mc.pull(w))
		mc.setNZ(mc.IndexX(), w)
	case PLY:
		mc.SetIndexY(mc.pull(w))
		mc.setNZ(mc.IndexY(), w)
	case PLP:
		mc.SetStatus(mc.Pull8())
	case PLB:
		mc.DBR = mc.Pull8()
		mc.setNZ(uint16(mc.DBR), registers.Bits8)
	case PLD:
		mc.D = mc.Pull16()
		mc.setNZ(mc.D, registers.Bits16)
	case PEA, PEI:
		mc.Push16(op.pointer)
	case PER:
		mc.Push16(mc.PC.Address() + op.value)

	// branches
	case BCC:
		mc.branch(defn, op, !mc.Status.Carry)
	case BCS:
		mc.branch(defn, op, mc.Status.Carry)
	case BNE:
		mc.branch(defn, op, !mc.Status.Zero)
	case BEQ:
		mc.branch(defn, op, mc.Status.Zero)
	case BPL:
		mc.branch(defn, op, !mc.Status.Sign)
	case BMI:
		mc.branch(defn, op, mc.Status.Sign)
	case BVC:
		mc.branch(defn, op, !mc.Status.Overflow)
	case BVS:
		mc.branch(defn, op, mc.Status.Overflow)
	case BRA:
		mc.branch(defn, op, true)
	case BRL:
		mc.PC.Add(op.value)
		mc.LastResult.BranchSuccess = true

	// jumps and subroutines
	case JMP:
		mc.PC.Load(uint16(op.address))
	case JML:
		mc.PBR = uint8(op.address >> 16)
		mc.PC.Load(uint16(op.address))
	case JSR:
		mc.Push16(mc.PC.Address() - 1)
		mc.PC.Load(uint16(op.address))
	case JSL:
		mc.Push8(mc.PBR)
		mc.Push16(mc.PC.Address() - 1)
		mc.PBR = uint8(op.address >> 16)
		mc.PC.Load(uint16(op.address))
	case RTS:
		mc.PC.Load(mc.Pull16() + 1)
	case RTL:
		mc.PC.Load(mc.Pull16() + 1)
		mc.PBR = mc.Pull8()
	case RTI:
		mc.SetStatus(mc.Pull8())
		mc.PC.Load(mc.Pull16())
		if !mc.Emulation {
			mc.PBR = mc.Pull8()
			mc.LastResult.Cycles++
		}

	// software interrupts
	case BRK:
		mc.read8BitPC()
		if mc.Emulation {
			mc.enterInterrupt(cpubus.EmulationIRQ, true)
		} else {
			mc.enterInterrupt(cpubus.NativeBRK, true)
			mc.LastResult.Cycles++
		}
	case COP:
		mc.read8BitPC()
		if mc.Emulation {
			mc.enterInterrupt(cpubus.EmulationCOP, true)
		} else {
			mc.enterInterrupt(cpubus.NativeCOP, true)
			mc.LastResult.Cycles++
		}

	// processor control
	case WAI:
		mc.Waiting = true
	case STP:
		mc.Stopped = true
		mc.diag.Diagnose(diagnostics.Diagnostic{
			Core:    coreName,
			Kind:    diagnostics.Stopped,
			Address: mc.LastResult.Address,
			Opcode:  []uint8{opcode},
		})

	// block moves
	case MVN:
		mc.blockMove(op, 1)
	case MVP:
		mc.blockMove(op, 0xffff)
	}
}

func (mc *CPU) setNZ(v uint16, w registers.Width) {
	v &= w.Mask()
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&w.SignBit() != 0
}

func (mc *CPU) adc(v uint16, w registers.Width) {
	a := mc.Accumulator()

	if mc.Status.DecimalMode {
		r, carry, overflow := registers.AddDecimal(a, v, mc.Status.Carry, w)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.SetAccumulator(r)
		mc.setNZ(r, w)
		return
	}

	r, f := alu.Compute(alu.Add, w, a, v, mc.Status.Carry)
	mc.Status.Carry = f.Carry
	mc.Status.Overflow = f.Overflow
	mc.SetAccumulator(r)
	mc.setNZ(r, w)
}

func (mc *CPU) sbc(v uint16, w registers.Width) {
	a := mc.Accumulator()

	if mc.Status.DecimalMode {
		r, carry, overflow := registers.SubtractDecimal(a, v, mc.Status.Carry, w)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.SetAccumulator(r)
		mc.setNZ(r, w)
		return
	}

	r, f := alu.Compute(alu.Subtract, w, a, v, !mc.Status.Carry)
	mc.Status.Carry = f.Carry
	mc.Status.Overflow = f.Overflow
	mc.SetAccumulator(r)
	mc.setNZ(r, w)
}

func (mc *CPU) compare(reg uint16, v uint16, w registers.Width) {
	r, f := alu.Compute(alu.Compare, w, reg, v, false)
	mc.Status.Carry = f.Carry
	mc.setNZ(r, w)
}

func (mc *CPU) logical(kind alu.Kind, v uint16, w registers.Width) {
	r, _ := alu.Compute(kind, w, mc.Accumulator(), v, false)
	mc.SetAccumulator(r)
	mc.setNZ(r, w)
}

// shifter returns a function that shifts or rotates a value and updates the
// carry flag.
func (mc *CPU) shifter(kind alu.Kind, w registers.Width) func(uint16) uint16 {
	return func(v uint16) uint16 {
		r, f := alu.Compute(kind, w, v, 0, mc.Status.Carry)
		mc.Status.Carry = f.Carry
		return r
	}
}

// modify applies f to the accumulator or to the memory operand, depending on
// the addressing mode.
func (mc *CPU) modify(defn *instructions.Definition, op operand, w registers.Width, f func(uint16) uint16) {
	if defn.AddressingMode == instructions.Accumulator {
		r := f(mc.Accumulator())
		mc.SetAccumulator(r)
		mc.setNZ(r, w)
		return
	}
	r := f(op.value)
	mc.writeData(op.address, r, w, op.bank0)
	mc.setNZ(r, w)
}

// branch to the relative address if the condition is true. taking a branch
// costs one cycle, except for BRA which always branches. in emulation mode
// there is a further cycle if the branch crosses a page.
func (mc *CPU) branch(defn *instructions.Definition, op operand, cond bool) {
	if !cond {
		return
	}

	mc.LastResult.BranchSuccess = true

	from := mc.PC.Address()
	mc.PC.Relative(int(int8(op.value)))

	if defn.Operator != BRA {
		mc.LastResult.Cycles++
	}
	if mc.Emulation && from&0xff00 != mc.PC.Address()&0xff00 {
		mc.LastResult.Cycles++
	}
}

// blockMove transfers a single byte of a MVN or MVP instruction. the
// instruction repeats by winding the program counter back to the opcode until
// the accumulator underflows.
func (mc *CPU) blockMove(op operand, step uint16) {
	iw := mc.IndexWidth()

	mc.DBR = op.dst
	v := mc.read8(uint32(op.src)<<16 | uint32(mc.IndexX()))
	mc.write8(uint32(op.dst)<<16|uint32(mc.IndexY()), v)

	mc.X.Load(mc.IndexX()+step, iw)
	mc.Y.Load(mc.IndexY()+step, iw)
	mc.C.Load(mc.C.Full()-1, registers.Bits16)

	if mc.C.Full() != 0xffff {
		mc.PC.Load(mc.PC.Address() - 3)
		mc.LastResult.BranchSuccess = true
	}
}
