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
	"fmt"

	"github.com/jetsetilly/gophercores/hardware/cpu/alu"
	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
)

// the instruction table and the function implementing each opcode. both are
// filled in by init() and never change afterwards.
var definitions instructions.Table
var operators [256]func(mc *CPU)

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var pairNames = [4]string{"B", "D", "H", "SP"}
var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
var accNames = [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
var accImmNames = [8]string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}

func define(opcode uint8, operator string, bytes int, cycles int, mode instructions.AddressingMode, effect instructions.Category, op func(mc *CPU)) {
	definitions[opcode] = instructions.Definition{
		OpCode:         opcode,
		Operator:       operator,
		Bytes:          bytes,
		Cycles:         cycles,
		AddressingMode: mode,
		Effect:         effect,
	}
	operators[opcode] = op
}

// register mode for the register code. register M is memory addressed by HL.
func regMode(r uint8) instructions.AddressingMode {
	if r == regM {
		return instructions.RegisterIndirect
	}
	return instructions.Register
}

// cycle cost for an instruction that takes longer when the register is M.
func regCycles(r uint8, cycles int, memory int) int {
	if r == regM {
		return memory
	}
	return cycles
}

func init() {
	// every opcode starts as unknown. the unused opcodes of the 8080 behave as
	// a one byte NOP
	for i := 0; i < 256; i++ {
		define(uint8(i), "???", 1, 4, instructions.Implied, instructions.Read, func(mc *CPU) {})
		definitions[i].Unknown = true
	}

	define(0x00, "NOP", 1, 4, instructions.Implied, instructions.Read, func(mc *CPU) {})

	// register pair instructions
	for rp := uint8(0); rp < 4; rp++ {
		rp := rp
		define(0x01|rp<<4, fmt.Sprintf("LXI %s,nn", pairNames[rp]), 3, 10, instructions.ImmediateExtended, instructions.Read, func(mc *CPU) {
			mc.setRP(rp, mc.read16BitPC())
		})
		define(0x03|rp<<4, fmt.Sprintf("INX %s", pairNames[rp]), 1, 5, instructions.Register, instructions.Modify, func(mc *CPU) {
			mc.setRP(rp, mc.rp(rp)+1)
		})
		define(0x09|rp<<4, fmt.Sprintf("DAD %s", pairNames[rp]), 1, 10, instructions.Register, instructions.Modify, func(mc *CPU) {
			mc.dad(mc.rp(rp))
		})
		define(0x0b|rp<<4, fmt.Sprintf("DCX %s", pairNames[rp]), 1, 5, instructions.Register, instructions.Modify, func(mc *CPU) {
			mc.setRP(rp, mc.rp(rp)-1)
		})
	}

	// accumulator load and store through BC and DE
	for rp := uint8(0); rp < 2; rp++ {
		rp := rp
		define(0x02|rp<<4, fmt.Sprintf("STAX %s", pairNames[rp]), 1, 7, instructions.RegisterIndirect, instructions.Write, func(mc *CPU) {
			mc.mem.Write(mc.pair(rp).Value(), mc.A)
		})
		define(0x0a|rp<<4, fmt.Sprintf("LDAX %s", pairNames[rp]), 1, 7, instructions.RegisterIndirect, instructions.Read, func(mc *CPU) {
			mc.A = mc.mem.Read(mc.pair(rp).Value())
		})
	}

	define(0x22, "SHLD nn", 3, 16, instructions.Extended, instructions.Write, func(mc *CPU) {
		mc.write16Bit(mc.read16BitPC(), mc.HL.Value())
	})
	define(0x2a, "LHLD nn", 3, 16, instructions.Extended, instructions.Read, func(mc *CPU) {
		mc.HL.Load(mc.read16Bit(mc.read16BitPC()))
	})
	define(0x32, "STA nn", 3, 13, instructions.Extended, instructions.Write, func(mc *CPU) {
		mc.mem.Write(mc.read16BitPC(), mc.A)
	})
	define(0x3a, "LDA nn", 3, 13, instructions.Extended, instructions.Read, func(mc *CPU) {
		mc.A = mc.mem.Read(mc.read16BitPC())
	})

	// single register instructions
	for r := uint8(0); r < 8; r++ {
		r := r
		define(0x04|r<<3, fmt.Sprintf("INR %s", regNames[r]), 1, regCycles(r, 5, 10), regMode(r), instructions.Modify, func(mc *CPU) {
			mc.setReg(r, mc.inr(mc.reg(r)))
		})
		define(0x05|r<<3, fmt.Sprintf("DCR %s", regNames[r]), 1, regCycles(r, 5, 10), regMode(r), instructions.Modify, func(mc *CPU) {
			mc.setReg(r, mc.dcr(mc.reg(r)))
		})
		define(0x06|r<<3, fmt.Sprintf("MVI %s,n", regNames[r]), 2, regCycles(r, 7, 10), instructions.Immediate, instructions.Write, func(mc *CPU) {
			mc.setReg(r, mc.read8BitPC())
		})
	}

	define(0x07, "RLC", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.rotate(alu.RotateLeft, mc.A&0x80 == 0x80)
	})
	define(0x0f, "RRC", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.rotate(alu.RotateRight, mc.A&0x01 == 0x01)
	})
	define(0x17, "RAL", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.rotate(alu.RotateLeft, mc.Flags.Carry)
	})
	define(0x1f, "RAR", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.rotate(alu.RotateRight, mc.Flags.Carry)
	})
	define(0x27, "DAA", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.daa()
	})
	define(0x2f, "CMA", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.A = ^mc.A
	})
	define(0x37, "STC", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.Flags.Carry = true
	})
	define(0x3f, "CMC", 1, 4, instructions.Implied, instructions.Modify, func(mc *CPU) {
		mc.Flags.Carry = !mc.Flags.Carry
	})

	// register to register moves. MOV M,M is the HLT instruction
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		for src := uint8(0); src < 8; src++ {
			src := src
			if dst == regM && src == regM {
				continue
			}
			mode := instructions.Register
			effect := instructions.Read
			cycles := 5
			if dst == regM {
				mode = instructions.RegisterIndirect
				effect = instructions.Write
				cycles = 7
			} else if src == regM {
				mode = instructions.RegisterIndirect
				cycles = 7
			}
			define(0x40|dst<<3|src, fmt.Sprintf("MOV %s,%s", regNames[dst], regNames[src]), 1, cycles, mode, effect, func(mc *CPU) {
				mc.setReg(dst, mc.reg(src))
			})
		}
	}

	define(0x76, "HLT", 1, 7, instructions.Implied, instructions.Interrupt, func(mc *CPU) {
		mc.Halted = true
	})

	// accumulator operations
	for op := uint8(0); op < 8; op++ {
		op := op
		for r := uint8(0); r < 8; r++ {
			r := r
			define(0x80|op<<3|r, fmt.Sprintf("%s %s", accNames[op], regNames[r]), 1, regCycles(r, 4, 7), regMode(r), instructions.Read, func(mc *CPU) {
				mc.accumulator(op, mc.reg(r))
			})
		}
		define(0xc6|op<<3, fmt.Sprintf("%s n", accImmNames[op]), 2, 7, instructions.Immediate, instructions.Read, func(mc *CPU) {
			mc.accumulator(op, mc.read8BitPC())
		})
	}

	// conditional flow. the taken variants of the conditional return and
	// call take longer than the untaken variants
	for cc := uint8(0); cc < 8; cc++ {
		cc := cc
		define(0xc0|cc<<3, fmt.Sprintf("R%s", condNames[cc]), 1, 5, instructions.Implied, instructions.Subroutine, func(mc *CPU) {
			if mc.condition(cc) {
				mc.PC.Load(mc.pop16())
				mc.LastResult.BranchSuccess = true
				mc.LastResult.Cycles = 11
			}
		})
		definitions[0xc0|cc<<3].MaxCycles = 11

		define(0xc2|cc<<3, fmt.Sprintf("J%s nn", condNames[cc]), 3, 10, instructions.ImmediateExtended, instructions.Flow, func(mc *CPU) {
			address := mc.read16BitPC()
			if mc.condition(cc) {
				mc.PC.Load(address)
				mc.LastResult.BranchSuccess = true
			}
		})

		define(0xc4|cc<<3, fmt.Sprintf("C%s nn", condNames[cc]), 3, 11, instructions.ImmediateExtended, instructions.Subroutine, func(mc *CPU) {
			address := mc.read16BitPC()
			if mc.condition(cc) {
				mc.push16(mc.PC.Address())
				mc.PC.Load(address)
				mc.LastResult.BranchSuccess = true
				mc.LastResult.Cycles = 17
			}
		})
		definitions[0xc4|cc<<3].MaxCycles = 17

		define(0xc7|cc<<3, fmt.Sprintf("RST %d", cc), 1, 11, instructions.Restart, instructions.Subroutine, func(mc *CPU) {
			mc.push16(mc.PC.Address())
			mc.PC.Load(uint16(cc) << 3)
		})
	}

	// stack operations. pair 3 is the PSW rather than the stack pointer
	for rp := uint8(0); rp < 4; rp++ {
		rp := rp
		name := pairNames[rp]
		if rp == 3 {
			name = "PSW"
		}
		define(0xc1|rp<<4, fmt.Sprintf("POP %s", name), 1, 10, instructions.Stack, instructions.Read, func(mc *CPU) {
			v := mc.pop16()
			if rp == 3 {
				mc.SetPSW(v)
			} else {
				mc.pair(rp).Load(v)
			}
		})
		define(0xc5|rp<<4, fmt.Sprintf("PUSH %s", name), 1, 11, instructions.Stack, instructions.Write, func(mc *CPU) {
			if rp == 3 {
				mc.push16(mc.PSW())
			} else {
				mc.push16(mc.pair(rp).Value())
			}
		})
	}

	define(0xc3, "JMP nn", 3, 10, instructions.ImmediateExtended, instructions.Flow, func(mc *CPU) {
		mc.PC.Load(mc.read16BitPC())
	})
	define(0xc9, "RET", 1, 10, instructions.Implied, instructions.Subroutine, func(mc *CPU) {
		mc.PC.Load(mc.pop16())
	})
	define(0xcd, "CALL nn", 3, 17, instructions.ImmediateExtended, instructions.Subroutine, func(mc *CPU) {
		address := mc.read16BitPC()
		mc.push16(mc.PC.Address())
		mc.PC.Load(address)
	})
	define(0xd3, "OUT n", 2, 10, instructions.Port, instructions.Write, func(mc *CPU) {
		cpubus.WritePort(mc.mem, uint16(mc.read8BitPC()), mc.A)
	})
	define(0xdb, "IN n", 2, 10, instructions.Port, instructions.Read, func(mc *CPU) {
		mc.A = cpubus.ReadPort(mc.mem, uint16(mc.read8BitPC()))
	})
	define(0xe3, "XTHL", 1, 18, instructions.Stack, instructions.Modify, func(mc *CPU) {
		sp := mc.SP.Address()
		l := mc.mem.Read(sp)
		h := mc.mem.Read(sp + 1)
		mc.mem.Write(sp, mc.HL.Lo)
		mc.mem.Write(sp+1, mc.HL.Hi)
		mc.HL.Lo = l
		mc.HL.Hi = h
	})
	define(0xe9, "PCHL", 1, 5, instructions.Register, instructions.Flow, func(mc *CPU) {
		mc.PC.Load(mc.HL.Value())
	})
	define(0xeb, "XCHG", 1, 4, instructions.Register, instructions.Read, func(mc *CPU) {
		de := mc.DE.Value()
		mc.DE.Load(mc.HL.Value())
		mc.HL.Load(de)
	})
	define(0xf3, "DI", 1, 4, instructions.Implied, instructions.Interrupt, func(mc *CPU) {
		mc.InterruptsEnabled = false
	})
	define(0xf9, "SPHL", 1, 5, instructions.Register, instructions.Read, func(mc *CPU) {
		mc.SP.Load(mc.HL.Value())
	})
	define(0xfb, "EI", 1, 4, instructions.Implied, instructions.Interrupt, func(mc *CPU) {
		mc.InterruptsEnabled = true
	})

	if err := definitions.Validate(); err != nil {
		panic(err)
	}
}
