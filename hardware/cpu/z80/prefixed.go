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
	"fmt"

	"github.com/jetsetilly/gophercores/hardware/cpu/alu"
	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
)

// the CB prefixed instructions.
var bitDefinitions instructions.Table
var bitOperators [256]func(mc *CPU)

// the ED prefixed instructions.
var extendedDefinitions instructions.Table
var extendedOperators [256]func(mc *CPU)

var shiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}

func init() {
	cb := func(opcode uint8, operator string, cycles int, mode instructions.AddressingMode, effect instructions.Category, op func(mc *CPU)) {
		define(&bitDefinitions, &bitOperators, opcode, operator, 2, cycles, mode, effect, op)
	}

	for r := uint8(0); r < 8; r++ {
		r := r
		for op := uint8(0); op < 8; op++ {
			op := op
			cb(op<<3|r, fmt.Sprintf("%s %s", shiftNames[op], regNames[r]), regCycles(r, 8, 15), regMode(r), instructions.Modify, func(mc *CPU) {
				mc.setReg(r, mc.shift(op, mc.reg(r)))
			})
		}

		for b := uint8(0); b < 8; b++ {
			b := b
			cb(0x40|b<<3|r, fmt.Sprintf("BIT %d,%s", b, regNames[r]), regCycles(r, 8, 12), instructions.Bit, instructions.Read, func(mc *CPU) {
				v := mc.reg(r)
				xyFrom := v
				if r == regHL {
					xyFrom = mc.HL.Hi
				}
				mc.bit(b, v, xyFrom)
			})
			cb(0x80|b<<3|r, fmt.Sprintf("RES %d,%s", b, regNames[r]), regCycles(r, 8, 15), instructions.Bit, instructions.Modify, func(mc *CPU) {
				mc.setReg(r, mc.reg(r)&^(1<<b))
			})
			cb(0xc0|b<<3|r, fmt.Sprintf("SET %d,%s", b, regNames[r]), regCycles(r, 8, 15), instructions.Bit, instructions.Modify, func(mc *CPU) {
				mc.setReg(r, mc.reg(r)|1<<b)
			})
		}
	}

	if err := bitDefinitions.Validate(); err != nil {
		panic(err)
	}

	ed := func(opcode uint8, operator string, cycles int, mode instructions.AddressingMode, effect instructions.Category, op func(mc *CPU)) {
		bytes := 2
		if mode == instructions.Extended {
			bytes = 4
		}
		define(&extendedDefinitions, &extendedOperators, opcode, operator, bytes, cycles, mode, effect, op)
	}

	// undefined ED opcodes behave as an eight cycle NOP
	for i := 0; i < 256; i++ {
		ed(uint8(i), "???", 8, instructions.Implied, instructions.Read, func(mc *CPU) {})
		extendedDefinitions[i].Unknown = true
	}

	for r := uint8(0); r < 8; r++ {
		r := r
		// code 6 reads the port and sets the flags without storing the value.
		// it writes zero to the port
		inName := fmt.Sprintf("IN %s,(C)", regNames[r])
		outName := fmt.Sprintf("OUT (C),%s", regNames[r])
		if r == regHL {
			inName = "IN (C)"
			outName = "OUT (C),0"
		}
		ed(0x40|r<<3, inName, 12, instructions.Port, instructions.Read, func(mc *CPU) {
			v := mc.in(mc.BC.Value())
			mc.inFlags(v)
			if r != regHL {
				mc.setReg(r, v)
			}
		})
		ed(0x41|r<<3, outName, 12, instructions.Port, instructions.Write, func(mc *CPU) {
			var v uint8
			if r != regHL {
				v = mc.reg(r)
			}
			mc.out(mc.BC.Value(), v)
		})
	}

	for rp := uint8(0); rp < 4; rp++ {
		rp := rp
		ed(0x42|rp<<4, fmt.Sprintf("SBC HL,%s", pairNames[rp]), 15, instructions.Register, instructions.Modify, func(mc *CPU) {
			mc.sbc16(mc.rp(rp))
		})
		ed(0x4a|rp<<4, fmt.Sprintf("ADC HL,%s", pairNames[rp]), 15, instructions.Register, instructions.Modify, func(mc *CPU) {
			mc.adc16(mc.rp(rp))
		})
		ed(0x43|rp<<4, fmt.Sprintf("LD (nn),%s", pairNames[rp]), 20, instructions.Extended, instructions.Write, func(mc *CPU) {
			mc.write16Bit(mc.read16BitPC(), mc.rp(rp))
		})
		ed(0x4b|rp<<4, fmt.Sprintf("LD %s,(nn)", pairNames[rp]), 20, instructions.Extended, instructions.Read, func(mc *CPU) {
			mc.setRP(rp, mc.read16Bit(mc.read16BitPC()))
		})
	}

	// NEG, RETN and IM are mirrored across the 0x40 to 0x7f range
	ims := [8]uint8{0, 0, 1, 2, 0, 0, 1, 2}
	for i := uint8(0); i < 8; i++ {
		ed(0x44|i<<3, "NEG", 8, instructions.Implied, instructions.Modify, func(mc *CPU) {
			v := mc.A
			mc.A = 0
			mc.sub8(v, false, true)
		})

		if i == 1 {
			ed(0x4d, "RETI", 14, instructions.Implied, instructions.Subroutine, func(mc *CPU) {
				mc.PC.Load(mc.pop16())
				mc.IFF1 = mc.IFF2
			})
		} else {
			ed(0x45|i<<3, "RETN", 14, instructions.Implied, instructions.Subroutine, func(mc *CPU) {
				mc.PC.Load(mc.pop16())
				mc.IFF1 = mc.IFF2
			})
		}

		im := ims[i]
		ed(0x46|i<<3, fmt.Sprintf("IM %d", im), 8, instructions.Implied, instructions.Interrupt, func(mc *CPU) {
			mc.IM = im
		})
	}

	ed(0x47, "LD I,A", 9, instructions.Register, instructions.Read, func(mc *CPU) {
		mc.I = mc.A
	})
	ed(0x4f, "LD R,A", 9, instructions.Register, instructions.Read, func(mc *CPU) {
		mc.R = mc.A
	})
	ed(0x57, "LD A,I", 9, instructions.Register, instructions.Read, func(mc *CPU) {
		mc.A = mc.I
		mc.irFlags()
	})
	ed(0x5f, "LD A,R", 9, instructions.Register, instructions.Read, func(mc *CPU) {
		mc.A = mc.R
		mc.irFlags()
	})
	ed(0x67, "RRD", 18, instructions.RegisterIndirect, instructions.Modify, func(mc *CPU) {
		v := mc.mem.Read(mc.HL.Value())
		mc.mem.Write(mc.HL.Value(), v>>4|mc.A<<4)
		mc.A = mc.A&0xf0 | v&0x0f
		mc.inFlags(mc.A)
	})
	ed(0x6f, "RLD", 18, instructions.RegisterIndirect, instructions.Modify, func(mc *CPU) {
		v := mc.mem.Read(mc.HL.Value())
		mc.mem.Write(mc.HL.Value(), v<<4|mc.A&0x0f)
		mc.A = mc.A&0xf0 | v>>4
		mc.inFlags(mc.A)
	})

	// block instructions. the repeating forms rewind the PC to the start of
	// the instruction while the loop continues
	block := func(opcode uint8, operator string, effect instructions.Category, op func(mc *CPU) bool, repeat bool) {
		cycles := 16
		ed(opcode, operator, cycles, instructions.RegisterIndirect, effect, func(mc *CPU) {
			if op(mc) && repeat {
				mc.PC.Load(mc.PC.Address() - 2)
				mc.LastResult.BranchSuccess = true
				mc.LastResult.Cycles += 5
			}
		})
		if repeat {
			extendedDefinitions[opcode].MaxCycles = 21
		}
	}

	for i, step := range []int{1, -1} {
		step := step
		dir := uint8(i) << 3
		suffix := [2]string{"I", "D"}[i]

		ld := func(mc *CPU) bool {
			v := mc.mem.Read(mc.HL.Value())
			mc.mem.Write(mc.DE.Value(), v)
			mc.HL.Load(mc.HL.Value() + uint16(step))
			mc.DE.Load(mc.DE.Value() + uint16(step))
			mc.BC.Dec()
			n := v + mc.A
			mc.F = mc.F&(FlagS|FlagZ|FlagC) | Flags(n)&FlagX | Flags(n<<4)&FlagY
			mc.F.set(FlagPV, mc.BC.Value() != 0)
			return mc.BC.Value() != 0
		}
		block(0xa0|dir, "LD"+suffix, instructions.Write, ld, false)
		block(0xb0|dir, "LD"+suffix+"R", instructions.Write, ld, true)

		cp := func(mc *CPU) bool {
			v := mc.mem.Read(mc.HL.Value())
			r, f := alu.Compute(alu.Compare, registers.Bits8, uint16(mc.A), uint16(v), false)
			mc.HL.Load(mc.HL.Value() + uint16(step))
			mc.BC.Dec()
			n := uint8(r)
			if f.HalfCarry {
				n--
			}
			mc.F = mc.F&FlagC | szxy(uint8(r))&^(FlagX|FlagY) | FlagN | Flags(n)&FlagX | Flags(n<<4)&FlagY
			mc.F.set(FlagH, f.HalfCarry)
			mc.F.set(FlagPV, mc.BC.Value() != 0)
			return mc.BC.Value() != 0 && !f.Zero
		}
		block(0xa1|dir, "CP"+suffix, instructions.Read, cp, false)
		block(0xb1|dir, "CP"+suffix+"R", instructions.Read, cp, true)

		in := func(mc *CPU) bool {
			v := mc.in(mc.BC.Value())
			mc.mem.Write(mc.HL.Value(), v)
			mc.HL.Load(mc.HL.Value() + uint16(step))
			mc.BC.Hi--
			mc.blockIOFlags(v, uint16(v)+uint16(mc.BC.Lo+uint8(step)))
			return mc.BC.Hi != 0
		}
		block(0xa2|dir, "IN"+suffix, instructions.Write, in, false)
		block(0xb2|dir, "IN"+suffix+"R", instructions.Write, in, true)

		out := func(mc *CPU) bool {
			v := mc.mem.Read(mc.HL.Value())
			mc.BC.Hi--
			mc.out(mc.BC.Value(), v)
			mc.HL.Load(mc.HL.Value() + uint16(step))
			mc.blockIOFlags(v, uint16(v)+uint16(mc.HL.Lo))
			return mc.BC.Hi != 0
		}
		block(0xa3|dir, "OUT"+suffix, instructions.Read, out, false)
		block(0xb3|dir, [2]string{"OTIR", "OTDR"}[i], instructions.Read, out, true)
	}

	if err := extendedDefinitions.Validate(); err != nil {
		panic(err)
	}
}

// blockIOFlags sets the flags after INI, IND, OUTI and OUTD. k is the sum of
// the transferred value and the low byte of the port or address, depending
// on the instruction.
func (mc *CPU) blockIOFlags(v uint8, k uint16) {
	mc.F = szxy(mc.BC.Hi)
	mc.F.set(FlagN, v&0x80 == 0x80)
	mc.F.set(FlagH|FlagC, k > 0xff)
	mc.F.set(FlagPV, alu.Parity(uint8(k)&0x07^mc.BC.Hi))
}
