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
)

// the unprefixed instruction table and the function implementing each opcode.
var definitions instructions.Table
var operators [256]func(mc *CPU)

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
var pairNames = [4]string{"BC", "DE", "HL", "SP"}
var stackNames = [4]string{"BC", "DE", "HL", "AF"}
var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
var accNames = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}

func define(tab *instructions.Table, ops *[256]func(mc *CPU), opcode uint8, operator string, bytes int, cycles int, mode instructions.AddressingMode, effect instructions.Category, op func(mc *CPU)) {
	tab[opcode] = instructions.Definition{
		OpCode:         opcode,
		Operator:       operator,
		Bytes:          bytes,
		Cycles:         cycles,
		AddressingMode: mode,
		Effect:         effect,
	}
	ops[opcode] = op
}

func regMode(r uint8) instructions.AddressingMode {
	if r == regHL {
		return instructions.RegisterIndirect
	}
	return instructions.Register
}

func regCycles(r uint8, cycles int, memory int) int {
	if r == regHL {
		return memory
	}
	return cycles
}

func init() {
	base := func(opcode uint8, operator string, bytes int, cycles int, mode instructions.AddressingMode, effect instructions.Category, op func(mc *CPU)) {
		define(&definitions, &operators, opcode, operator, bytes, cycles, mode, effect, op)
	}

	base(0x00, "NOP", 1, 4, instructions.Implied, instructions.Read, func(mc *CPU) {})

	for rp := uint8(0); rp < 4; rp++ {
		rp := rp
		base(0x01|rp<<4, fmt.Sprintf("LD %s,nn", pairNames[rp]), 3, 10, instructions.ImmediateExtended, instructions.Read, func(mc *CPU) {
			mc.setRP(rp, mc.read16BitPC())
		})
		base(0x03|rp<<4, fmt.Sprintf("INC %s", pairNames[rp]), 1, 6, instructions.Register, instructions.Modify, func(mc *CPU) {
			mc.setRP(rp, mc.rp(rp)+1)
		})
		base(0x09|rp<<4, fmt.Sprintf("ADD HL,%s", pairNames[rp]), 1, 11, instructions.Register, instructions.Modify, func(mc *CPU) {
			mc.HL.Load(mc.add16(mc.HL.Value(), mc.rp(rp)))
		})
		base(0x0b|rp<<4, fmt.Sprintf("DEC %s", pairNames[rp]), 1, 6, instructions.Register, instructions.Modify, func(mc *CPU) {
			mc.setRP(rp, mc.rp(rp)-1)
		})
	}

	for rp := uint8(0); rp < 2; rp++ {
		rp := rp
		base(0x02|rp<<4, fmt.Sprintf("LD (%s),A", pairNames[rp]), 1, 7, instructions.RegisterIndirect, instructions.Write, func(mc *CPU) {
			mc.mem.Write(mc.pair(rp).Value(), mc.A)
		})
		base(0x0a|rp<<4, fmt.Sprintf("LD A,(%s)", pairNames[rp]), 1, 7, instructions.RegisterIndirect, instructions.Read, func(mc *CPU) {
			mc.A = mc.mem.Read(mc.pair(rp).Value())
		})
	}

	for r := uint8(0); r < 8; r++ {
		r := r
		base(0x04|r<<3, fmt.Sprintf("INC %s", regNames[r]), 1, regCycles(r, 4, 11), regMode(r), instructions.Modify, func(mc *CPU) {
			mc.setReg(r, mc.inc8(mc.reg(r)))
		})
		base(0x05|r<<3, fmt.Sprintf("DEC %s", regNames[r]), 1, regCycles(r, 4, 11), regMode(r), instructions.Modify, func(mc *CPU) {
			mc.setReg(r, mc.dec8(mc.reg(r)))
		})
		base(0x06|r<<3, fmt.Sprintf("LD %s,n", regNames[r]), 2, regCycles(r, 7, 10), instructions.Immediate, instructions.Write, func(mc *CPU) {
			mc.setReg(r, mc.read8BitPC())
		})
	}

	base(0x07, "RLCA", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.rotateA(alu.RotateLeft, mc.A&0x80 == 0x80)
	})
	base(0x0f, "RRCA", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.rotateA(alu.RotateRight, mc.A&0x01 == 0x01)
	})
	base(0x17, "RLA", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.rotateA(alu.RotateLeft, mc.F.Is(FlagC))
	})
	base(0x1f, "RRA", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.rotateA(alu.RotateRight, mc.F.Is(FlagC))
	})

	base(0x08, "EX AF,AF'", 1, 4, instructions.Register, instructions.Read, func(mc *CPU) {
		mc.ExchangeAF()
	})

	base(0x10, "DJNZ e", 2, 8, instructions.Relative, instructions.Flow, func(mc *CPU) {
		e := int8(mc.read8BitPC())
		mc.BC.Hi--
		if mc.BC.Hi != 0 {
			mc.PC.Relative(int(e))
			mc.LastResult.BranchSuccess = true
			mc.LastResult.Cycles += 5
		}
	})
	definitions[0x10].MaxCycles = 13

	base(0x18, "JR e", 2, 12, instructions.Relative, instructions.Flow, func(mc *CPU) {
		e := int8(mc.read8BitPC())
		mc.PC.Relative(int(e))
		mc.LastResult.BranchSuccess = true
	})

	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		base(0x20|cc<<3, fmt.Sprintf("JR %s,e", condNames[cc]), 2, 7, instructions.Relative, instructions.Flow, func(mc *CPU) {
			e := int8(mc.read8BitPC())
			if mc.condition(cc) {
				mc.PC.Relative(int(e))
				mc.LastResult.BranchSuccess = true
				mc.LastResult.Cycles += 5
			}
		})
		definitions[0x20|cc<<3].MaxCycles = 12
	}

	base(0x22, "LD (nn),HL", 3, 16, instructions.Extended, instructions.Write, func(mc *CPU) {
		mc.write16Bit(mc.read16BitPC(), mc.HL.Value())
	})
	base(0x2a, "LD HL,(nn)", 3, 16, instructions.Extended, instructions.Read, func(mc *CPU) {
		mc.HL.Load(mc.read16Bit(mc.read16BitPC()))
	})
	base(0x32, "LD (nn),A", 3, 13, instructions.Extended, instructions.Write, func(mc *CPU) {
		mc.mem.Write(mc.read16BitPC(), mc.A)
	})
	base(0x3a, "LD A,(nn)", 3, 13, instructions.Extended, instructions.Read, func(mc *CPU) {
		mc.A = mc.mem.Read(mc.read16BitPC())
	})

	base(0x27, "DAA", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.daa()
	})
	base(0x2f, "CPL", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.A = ^mc.A
		mc.F = mc.F&(FlagS|FlagZ|FlagPV|FlagC) | FlagH | FlagN | xy(mc.A)
	})
	base(0x37, "SCF", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.F = mc.F&(FlagS|FlagZ|FlagPV) | FlagC | xy(mc.A)
	})
	base(0x3f, "CCF", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		carry := mc.F.Is(FlagC)
		mc.F = mc.F&(FlagS|FlagZ|FlagPV) | xy(mc.A)
		mc.F.set(FlagH, carry)
		mc.F.set(FlagC, !carry)
	})

	// LD (HL),(HL) is the HALT instruction
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		for src := uint8(0); src < 8; src++ {
			src := src
			if dst == regHL && src == regHL {
				continue
			}
			mode := instructions.Register
			effect := instructions.Read
			cycles := 4
			if dst == regHL {
				mode = instructions.RegisterIndirect
				effect = instructions.Write
				cycles = 7
			} else if src == regHL {
				mode = instructions.RegisterIndirect
				cycles = 7
			}
			base(0x40|dst<<3|src, fmt.Sprintf("LD %s,%s", regNames[dst], regNames[src]), 1, cycles, mode, effect, func(mc *CPU) {
				mc.setReg(dst, mc.reg(src))
			})
		}
	}

	base(0x76, "HALT", 1, 4, instructions.Implied, instructions.Interrupt, func(mc *CPU) {
		mc.Halted = true
	})

	for op := uint8(0); op < 8; op++ {
		op := op
		for r := uint8(0); r < 8; r++ {
			r := r
			base(0x80|op<<3|r, accNames[op]+regNames[r], 1, regCycles(r, 4, 7), regMode(r), instructions.Read, func(mc *CPU) {
				mc.accumulator(op, mc.reg(r))
			})
		}
		base(0xc6|op<<3, accNames[op]+"n", 2, 7, instructions.Immediate, instructions.Read, func(mc *CPU) {
			mc.accumulator(op, mc.read8BitPC())
		})
	}

	for cc := uint8(0); cc < 8; cc++ {
		cc := cc
		base(0xc0|cc<<3, fmt.Sprintf("RET %s", condNames[cc]), 1, 5, instructions.Implied, instructions.Subroutine, func(mc *CPU) {
			if mc.condition(cc) {
				mc.PC.Load(mc.pop16())
				mc.LastResult.BranchSuccess = true
				mc.LastResult.Cycles += 6
			}
		})
		definitions[0xc0|cc<<3].MaxCycles = 11

		base(0xc2|cc<<3, fmt.Sprintf("JP %s,nn", condNames[cc]), 3, 10, instructions.ImmediateExtended, instructions.Flow, func(mc *CPU) {
			address := mc.read16BitPC()
			if mc.condition(cc) {
				mc.PC.Load(address)
				mc.LastResult.BranchSuccess = true
			}
		})

		base(0xc4|cc<<3, fmt.Sprintf("CALL %s,nn", condNames[cc]), 3, 10, instructions.ImmediateExtended, instructions.Subroutine, func(mc *CPU) {
			address := mc.read16BitPC()
			if mc.condition(cc) {
				mc.push16(mc.PC.Address())
				mc.PC.Load(address)
				mc.LastResult.BranchSuccess = true
				mc.LastResult.Cycles += 7
			}
		})
		definitions[0xc4|cc<<3].MaxCycles = 17

		base(0xc7|cc<<3, fmt.Sprintf("RST %02XH", cc<<3), 1, 11, instructions.Restart, instructions.Subroutine, func(mc *CPU) {
			mc.push16(mc.PC.Address())
			mc.PC.Load(uint16(cc) << 3)
		})
	}

	for rp := uint8(0); rp < 4; rp++ {
		rp := rp
		base(0xc1|rp<<4, fmt.Sprintf("POP %s", stackNames[rp]), 1, 10, instructions.Stack, instructions.Read, func(mc *CPU) {
			v := mc.pop16()
			if rp == 3 {
				mc.SetAF(v)
			} else {
				mc.pair(rp).Load(v)
			}
		})
		base(0xc5|rp<<4, fmt.Sprintf("PUSH %s", stackNames[rp]), 1, 11, instructions.Stack, instructions.Write, func(mc *CPU) {
			if rp == 3 {
				mc.push16(mc.AF())
			} else {
				mc.push16(mc.pair(rp).Value())
			}
		})
	}

	base(0xc3, "JP nn", 3, 10, instructions.ImmediateExtended, instructions.Flow, func(mc *CPU) {
		mc.PC.Load(mc.read16BitPC())
	})
	base(0xc9, "RET", 1, 10, instructions.Implied, instructions.Subroutine, func(mc *CPU) {
		mc.PC.Load(mc.pop16())
	})
	base(0xcd, "CALL nn", 3, 17, instructions.ImmediateExtended, instructions.Subroutine, func(mc *CPU) {
		address := mc.read16BitPC()
		mc.push16(mc.PC.Address())
		mc.PC.Load(address)
	})
	base(0xd3, "OUT (n),A", 2, 11, instructions.Port, instructions.Write, func(mc *CPU) {
		mc.out(uint16(mc.A)<<8|uint16(mc.read8BitPC()), mc.A)
	})
	base(0xdb, "IN A,(n)", 2, 11, instructions.Port, instructions.Read, func(mc *CPU) {
		mc.A = mc.in(uint16(mc.A)<<8 | uint16(mc.read8BitPC()))
	})
	base(0xd9, "EXX", 1, 4, instructions.Register, instructions.Read, func(mc *CPU) {
		mc.Exchange()
	})
	base(0xe3, "EX (SP),HL", 1, 19, instructions.Stack, instructions.Modify, func(mc *CPU) {
		v := mc.read16Bit(mc.SP.Address())
		mc.write16Bit(mc.SP.Address(), mc.HL.Value())
		mc.HL.Load(v)
	})
	base(0xe9, "JP (HL)", 1, 4, instructions.Register, instructions.Flow, func(mc *CPU) {
		mc.PC.Load(mc.HL.Value())
	})
	base(0xeb, "EX DE,HL", 1, 4, instructions.Register, instructions.Read, func(mc *CPU) {
		de := mc.DE.Value()
		mc.DE.Load(mc.HL.Value())
		mc.HL.Load(de)
	})
	base(0xf3, "DI", 1, 4, instructions.Implied, instructions.Interrupt, func(mc *CPU) {
		mc.IFF1 = false
		mc.IFF2 = false
		mc.eiDelay = 0
	})
	base(0xf9, "LD SP,HL", 1, 6, instructions.Register, instructions.Read, func(mc *CPU) {
		mc.SP.Load(mc.HL.Value())
	})

	// the interrupt flip-flops are set after the instruction following EI
	base(0xfb, "EI", 1, 4, instructions.Implied, instructions.Interrupt, func(mc *CPU) {
		mc.eiDelay = 2
	})

	// the prefix bytes are never the result of a step. the definitions exist
	// so that the table is complete
	for _, p := range []uint8{0xcb, 0xdd, 0xed, 0xfd} {
		base(p, fmt.Sprintf("PREFIX %02X", p), 1, 4, instructions.Implied, instructions.Read, func(mc *CPU) {})
	}

	if err := definitions.Validate(); err != nil {
		panic(err)
	}
}
