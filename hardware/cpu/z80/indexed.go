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

	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
)

// the DD (IX) and FD (IY) prefixed instructions. the operators are shared
// between the two prefixes and a nil operator means that the opcode has no
// indexed form.
var indexedDefinitions [2]instructions.Table
var indexedOperators [256]func(mc *CPU)

// the DDCB and FDCB prefixed instructions. the operator is given the effective
// address of the (IX+d) or (IY+d) operand.
var indexedBitDefinitions [2]instructions.Table
var indexedBitOperators [256]func(mc *CPU, address uint16)

var indexNames = [2]string{"IX", "IY"}

func init() {
	for t, idx := range indexNames {
		idx := idx
		tab := &indexedDefinitions[t]

		// names of registers with H and L replaced by the index register
		// halves
		half := func(r uint8) string {
			switch r {
			case regH:
				return idx + "H"
			case regL:
				return idx + "L"
			}
			return regNames[r]
		}
		mem := fmt.Sprintf("(%s+d)", idx)

		def := func(opcode uint8, operator string, bytes int, cycles int, mode instructions.AddressingMode, effect instructions.Category, op func(mc *CPU)) {
			define(tab, &indexedOperators, opcode, operator, bytes, cycles, mode, effect, op)
		}

		for rp := uint8(0); rp < 4; rp++ {
			rp := rp
			name := pairNames[rp]
			if rp == 2 {
				name = idx
			}
			def(0x09|rp<<4, fmt.Sprintf("ADD %s,%s", idx, name), 2, 15, instructions.Register, instructions.Modify, func(mc *CPU) {
				mc.index().Load(mc.add16(mc.index().Value(), mc.indexRP(rp)))
			})
		}

		def(0x21, fmt.Sprintf("LD %s,nn", idx), 4, 14, instructions.ImmediateExtended, instructions.Read, func(mc *CPU) {
			mc.index().Load(mc.read16BitPC())
		})
		def(0x22, fmt.Sprintf("LD (nn),%s", idx), 4, 20, instructions.Extended, instructions.Write, func(mc *CPU) {
			mc.write16Bit(mc.read16BitPC(), mc.index().Value())
		})
		def(0x2a, fmt.Sprintf("LD %s,(nn)", idx), 4, 20, instructions.Extended, instructions.Read, func(mc *CPU) {
			mc.index().Load(mc.read16Bit(mc.read16BitPC()))
		})
		def(0x23, fmt.Sprintf("INC %s", idx), 2, 10, instructions.Register, instructions.Modify, func(mc *CPU) {
			mc.index().Inc()
		})
		def(0x2b, fmt.Sprintf("DEC %s", idx), 2, 10, instructions.Register, instructions.Modify, func(mc *CPU) {
			mc.index().Dec()
		})

		for _, r := range []uint8{regH, regL} {
			r := r
			def(0x04|r<<3, fmt.Sprintf("INC %s", half(r)), 2, 8, instructions.Register, instructions.Modify, func(mc *CPU) {
				mc.setIndexReg(r, mc.inc8(mc.indexReg(r)))
			})
			def(0x05|r<<3, fmt.Sprintf("DEC %s", half(r)), 2, 8, instructions.Register, instructions.Modify, func(mc *CPU) {
				mc.setIndexReg(r, mc.dec8(mc.indexReg(r)))
			})
			def(0x06|r<<3, fmt.Sprintf("LD %s,n", half(r)), 3, 11, instructions.Immediate, instructions.Write, func(mc *CPU) {
				mc.setIndexReg(r, mc.read8BitPC())
			})
		}

		def(0x34, fmt.Sprintf("INC %s", mem), 3, 23, instructions.Indexed, instructions.Modify, func(mc *CPU) {
			address := mc.indexAddress()
			mc.mem.Write(address, mc.inc8(mc.mem.Read(address)))
		})
		def(0x35, fmt.Sprintf("DEC %s", mem), 3, 23, instructions.Indexed, instructions.Modify, func(mc *CPU) {
			address := mc.indexAddress()
			mc.mem.Write(address, mc.dec8(mc.mem.Read(address)))
		})
		def(0x36, fmt.Sprintf("LD %s,n", mem), 4, 19, instructions.Indexed, instructions.Write, func(mc *CPU) {
			address := mc.indexAddress()
			mc.mem.Write(address, mc.read8BitPC())
		})

		// loads. when one operand is (IX+d) the other operand is a normal
		// register, including H and L
		for dst := uint8(0); dst < 8; dst++ {
			dst := dst
			for src := uint8(0); src < 8; src++ {
				src := src
				opcode := 0x40 | dst<<3 | src
				switch {
				case dst == regHL && src == regHL:
				case dst == regHL:
					def(opcode, fmt.Sprintf("LD %s,%s", mem, regNames[src]), 3, 19, instructions.Indexed, instructions.Write, func(mc *CPU) {
						mc.mem.Write(mc.indexAddress(), mc.reg(src))
					})
				case src == regHL:
					def(opcode, fmt.Sprintf("LD %s,%s", regNames[dst], mem), 3, 19, instructions.Indexed, instructions.Read, func(mc *CPU) {
						mc.setReg(dst, mc.mem.Read(mc.indexAddress()))
					})
				case dst == regH || dst == regL || src == regH || src == regL:
					def(opcode, fmt.Sprintf("LD %s,%s", half(dst), half(src)), 2, 8, instructions.Register, instructions.Read, func(mc *CPU) {
						mc.setIndexReg(dst, mc.indexReg(src))
					})
				}
			}
		}

		for op := uint8(0); op < 8; op++ {
			op := op
			def(0x86|op<<3, accNames[op]+mem, 3, 19, instructions.Indexed, instructions.Read, func(mc *CPU) {
				mc.accumulator(op, mc.mem.Read(mc.indexAddress()))
			})
			for _, r := range []uint8{regH, regL} {
				r := r
				def(0x80|op<<3|r, accNames[op]+half(r), 2, 8, instructions.Register, instructions.Read, func(mc *CPU) {
					mc.accumulator(op, mc.indexReg(r))
				})
			}
		}

		def(0xe1, fmt.Sprintf("POP %s", idx), 2, 14, instructions.Stack, instructions.Read, func(mc *CPU) {
			mc.index().Load(mc.pop16())
		})
		def(0xe5, fmt.Sprintf("PUSH %s", idx), 2, 15, instructions.Stack, instructions.Write, func(mc *CPU) {
			mc.push16(mc.index().Value())
		})
		def(0xe3, fmt.Sprintf("EX (SP),%s", idx), 2, 23, instructions.Stack, instructions.Modify, func(mc *CPU) {
			v := mc.read16Bit(mc.SP.Address())
			mc.write16Bit(mc.SP.Address(), mc.index().Value())
			mc.index().Load(v)
		})
		def(0xe9, fmt.Sprintf("JP (%s)", idx), 2, 8, instructions.Register, instructions.Flow, func(mc *CPU) {
			mc.PC.Load(mc.index().Value())
		})
		def(0xf9, fmt.Sprintf("LD SP,%s", idx), 2, 10, instructions.Register, instructions.Read, func(mc *CPU) {
			mc.SP.Load(mc.index().Value())
		})

		// indexed bit instructions. except for BIT, the result is also copied
		// to the register encoded in the low bits of the opcode
		bits := &indexedBitDefinitions[t]
		for i := 0; i < 256; i++ {
			opcode := uint8(i)
			r := opcode & 0x07
			n := (opcode >> 3) & 0x07

			copyTo := ""
			if r != regHL {
				copyTo = "," + regNames[r]
			}

			var operator string
			cycles := 23
			effect := instructions.Modify

			switch opcode >> 6 {
			case 0:
				operator = fmt.Sprintf("%s %s%s", shiftNames[n], mem, copyTo)
				indexedBitOperators[opcode] = func(mc *CPU, address uint16) {
					v := mc.shift(n, mc.mem.Read(address))
					mc.mem.Write(address, v)
					if r != regHL {
						mc.setReg(r, v)
					}
				}
			case 1:
				operator = fmt.Sprintf("BIT %d,%s", n, mem)
				cycles = 20
				effect = instructions.Read
				indexedBitOperators[opcode] = func(mc *CPU, address uint16) {
					mc.bit(n, mc.mem.Read(address), uint8(address>>8))
				}
			case 2:
				operator = fmt.Sprintf("RES %d,%s%s", n, mem, copyTo)
				indexedBitOperators[opcode] = func(mc *CPU, address uint16) {
					v := mc.mem.Read(address) &^ (1 << n)
					mc.mem.Write(address, v)
					if r != regHL {
						mc.setReg(r, v)
					}
				}
			case 3:
				operator = fmt.Sprintf("SET %d,%s%s", n, mem, copyTo)
				indexedBitOperators[opcode] = func(mc *CPU, address uint16) {
					v := mc.mem.Read(address) | 1<<n
					mc.mem.Write(address, v)
					if r != regHL {
						mc.setReg(r, v)
					}
				}
			}

			bits[opcode] = instructions.Definition{
				OpCode:         opcode,
				Operator:       operator,
				Bytes:          4,
				Cycles:         cycles,
				AddressingMode: instructions.Indexed,
				Effect:         effect,
			}
		}

		if err := bits.Validate(); err != nil {
			panic(err)
		}
	}
}
