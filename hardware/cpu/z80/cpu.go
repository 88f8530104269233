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

	"github.com/jetsetilly/gophercores/diagnostics"
	"github.com/jetsetilly/gophercores/hardware/cpu/execution"
	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
)

const coreName = "z80"

// cycle costs outside of the instruction tables.
const (
	haltedCycles        = 4
	ignoredPrefixCycles = 4
	nmiCycles           = 11
	im0Cycles           = 13
	im1Cycles           = 13
	im2Cycles           = 19
)

// NMIAddress is the address jumped to by a non-maskable interrupt.
const NMIAddress = uint16(0x0066)

// IM1Address is the address jumped to by a maskable interrupt in mode 1.
const IM1Address = uint16(0x0038)

var halted = instructions.Definition{
	OpCode:   0x76,
	Operator: "HALTED",
	Bytes:    0,
	Cycles:   haltedCycles,
}

// a DD or FD prefix followed by another prefix is executed on its own, in the
// same time as a NOP.
var redundantPrefix = [2]instructions.Definition{
	{OpCode: 0xdd, Operator: "NOP*", Bytes: 1, Cycles: ignoredPrefixCycles},
	{OpCode: 0xfd, Operator: "NOP*", Bytes: 1, Cycles: ignoredPrefixCycles},
}

// Shadow is the alternate register set. It is exchanged with the main set by
// the EX AF,AF' and EXX instructions.
type Shadow struct {
	A  uint8
	F  Flags
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair
}

// CPU implements the Zilog Z80.
type CPU struct {
	PC  registers.ProgramCounter
	SP  registers.StackPointer
	A   uint8
	F   Flags
	BC  registers.Pair
	DE  registers.Pair
	HL  registers.Pair
	Alt Shadow
	IX  registers.Pair
	IY  registers.Pair

	// interrupt vector base and memory refresh registers
	I uint8
	R uint8

	// interrupt mode (0, 1 or 2) and the interrupt flip-flops
	IM   uint8
	IFF1 bool
	IFF2 bool

	// the CPU has executed a HALT instruction and is waiting for an interrupt
	Halted bool

	// the total number of cycles consumed since the last reset
	Cycles uint64

	// the result of the most recent call to Step()
	LastResult execution.Result

	mem  cpubus.Memory
	diag diagnostics.Sink

	// number of instructions to complete before the interrupt flip-flops are
	// set by an earlier EI
	eiDelay int

	// the index register used by a DD or FD prefixed instruction. only
	// meaningful during a step
	useIY bool

	// number of operand bytes read during the current step
	operandBytes int
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		BC:   registers.NewPair(0, "BC"),
		DE:   registers.NewPair(0, "DE"),
		HL:   registers.NewPair(0, "HL"),
		IX:   registers.NewPair(0, "IX"),
		IY:   registers.NewPair(0, "IY"),
		mem:  mem,
		diag: diagnostics.Discard,
	}
	mc.Alt = Shadow{
		BC: registers.NewPair(0, "BC'"),
		DE: registers.NewPair(0, "DE'"),
		HL: registers.NewPair(0, "HL'"),
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// SetDiagnostics sets the sink for diagnostic reports. A nil sink discards all
// diagnostics.
func (mc *CPU) SetDiagnostics(sink diagnostics.Sink) {
	if sink == nil {
		sink = diagnostics.Discard
	}
	mc.diag = sink
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s AF=%04x %s %s %s %s %s %s I=%02x R=%02x IM=%d %s=%s",
		mc.PC.Label(), mc.PC, mc.AF(), mc.BC, mc.DE, mc.HL, mc.IX, mc.IY, mc.SP,
		mc.I, mc.R, mc.IM, mc.F.Label(), mc.F)
}

// Reset the CPU. The PC, I and R registers are zeroed, AF and SP are set to
// 0xffff, interrupts are disabled and interrupt mode 0 is selected. The other
// registers are not affected.
func (mc *CPU) Reset() {
	mc.PC = registers.NewProgramCounter(0)
	mc.SP = registers.NewStackPointer(0xffff, "SP")
	mc.SetAF(0xffff)
	mc.I = 0
	mc.R = 0
	mc.IM = 0
	mc.IFF1 = false
	mc.IFF2 = false
	mc.Halted = false
	mc.Cycles = 0
	mc.eiDelay = 0
	mc.LastResult.Reset()
}

// AF returns the accumulator and flags as a 16 bit value.
func (mc *CPU) AF() uint16 {
	return uint16(mc.A)<<8 | uint16(mc.F)
}

// SetAF sets the accumulator and flags from a 16 bit value.
func (mc *CPU) SetAF(v uint16) {
	mc.A = uint8(v >> 8)
	mc.F = Flags(v)
}

// CycleCount returns the number of cycles consumed since the last reset.
func (mc *CPU) CycleCount() uint64 {
	return mc.Cycles
}

// ProgramCounter returns the current value of the PC.
func (mc *CPU) ProgramCounter() uint32 {
	return uint32(mc.PC.Address())
}

// Result returns the result of the most recent call to Step().
func (mc *CPU) Result() execution.Result {
	return mc.LastResult
}

// Step executes exactly one instruction, including any prefix bytes, and
// returns the number of cycles it consumed.
func (mc *CPU) Step() int {
	mc.LastResult.Reset()
	mc.LastResult.Address = uint32(mc.PC.Address())
	mc.operandBytes = 0

	if mc.Halted {
		// the CPU executes NOPs while halted so the refresh register still
		// counts
		mc.incrementR()
		mc.LastResult.Defn = &halted
		mc.LastResult.Cycles = haltedCycles
	} else {
		mc.execute(mc.fetchOpcode())
	}

	if mc.eiDelay > 0 {
		mc.eiDelay--
		if mc.eiDelay == 0 {
			mc.IFF1 = true
			mc.IFF2 = true
		}
	}

	mc.LastResult.Final = true
	mc.Cycles += uint64(mc.LastResult.Cycles)

	return mc.LastResult.Cycles
}

// execute the instruction beginning with the opcode. the opcode has already
// been fetched.
func (mc *CPU) execute(opcode uint8) {
	switch opcode {
	case 0xcb:
		mc.LastResult.Prefix = 0xcb
		op := mc.fetchOpcode()
		mc.dispatch(bitDefinitions.Lookup(op), bitOperators[op])

	case 0xed:
		mc.LastResult.Prefix = 0xed
		op := mc.fetchOpcode()
		defn := extendedDefinitions.Lookup(op)
		mc.dispatch(defn, extendedOperators[op])
		if defn.Unknown {
			mc.diag.Diagnose(diagnostics.Diagnostic{
				Core:    coreName,
				Kind:    diagnostics.UnknownOpcode,
				Address: mc.LastResult.Address,
				Opcode:  []uint8{0xed, op},
			})
		}

	case 0xdd:
		mc.executeIndexed(false)

	case 0xfd:
		mc.executeIndexed(true)

	default:
		mc.dispatch(definitions.Lookup(opcode), operators[opcode])
	}
}

// executeIndexed handles the instructions prefixed by DD (IX) or FD (IY). if
// the following opcode has no indexed form the prefix is ignored and the
// opcode is executed normally.
//
// a prefix followed by DD, FD or ED is a step of its own. the following prefix
// is left for the next call to Step().
func (mc *CPU) executeIndexed(iy bool) {
	prefix := uint16(0xdd)
	table := 0
	if iy {
		prefix = 0xfd
		table = 1
	}

	switch mc.mem.Read(mc.PC.Address()) {
	case 0xdd, 0xfd, 0xed:
		mc.dispatch(&redundantPrefix[table], func(_ *CPU) {})
		return
	}

	op := mc.fetchOpcode()

	if op == 0xcb {
		mc.LastResult.Prefix = prefix<<8 | 0xcb
		mc.useIY = iy
		d := int8(mc.read8BitPC())
		op = mc.fetchByte()
		address := mc.index().Value() + uint16(int16(d))
		mc.LastResult.Defn = indexedBitDefinitions[table].Lookup(op)
		mc.LastResult.Cycles += mc.LastResult.Defn.Cycles
		indexedBitOperators[op](mc, address)
		return
	}

	if indexedOperators[op] == nil {
		mc.LastResult.IgnoredPrefix = true
		mc.LastResult.Cycles += ignoredPrefixCycles
		mc.execute(op)
		return
	}

	mc.LastResult.Prefix = prefix
	mc.useIY = iy
	mc.dispatch(indexedDefinitions[table].Lookup(op), indexedOperators[op])
}

func (mc *CPU) dispatch(defn *instructions.Definition, op func(mc *CPU)) {
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles += defn.Cycles
	op(mc)
}

// Interrupt requests a maskable interrupt. The data argument is the value the
// interrupting device places on the data bus. In mode 0 it should be an RST
// instruction. In mode 2 it is the low byte of the vector table address. It is
// ignored in mode 1. If interrupts are disabled the request is ignored.
//
// Returns the number of cycles consumed by accepting the interrupt, which will
// be zero if the interrupt was ignored.
func (mc *CPU) Interrupt(data uint8) int {
	if !mc.IFF1 {
		return 0
	}

	mc.Halted = false
	mc.IFF1 = false
	mc.IFF2 = false
	mc.incrementR()
	mc.push16(mc.PC.Address())

	var cycles int
	switch mc.IM {
	case 2:
		vector := uint16(mc.I)<<8 | uint16(data)
		mc.PC.Load(mc.read16Bit(vector))
		cycles = im2Cycles
	case 1:
		mc.PC.Load(IM1Address)
		cycles = im1Cycles
	default:
		// only RST instructions are supported in mode 0. anything else is
		// treated as RST 38H
		if data&0xc7 == 0xc7 {
			mc.PC.Load(uint16(data & 0x38))
		} else {
			mc.PC.Load(IM1Address)
		}
		cycles = im0Cycles
	}

	mc.Cycles += uint64(cycles)
	return cycles
}

// NonMaskableInterrupt is always accepted. The state of IFF1 is preserved in
// IFF2 so that it can be restored by RETN.
//
// Returns the number of cycles consumed by accepting the interrupt.
func (mc *CPU) NonMaskableInterrupt() int {
	mc.Halted = false
	mc.IFF2 = mc.IFF1
	mc.IFF1 = false
	mc.incrementR()
	mc.push16(mc.PC.Address())
	mc.PC.Load(NMIAddress)
	mc.Cycles += nmiCycles
	return nmiCycles
}

// ExchangeAF swaps the accumulator and flags with the shadow set.
func (mc *CPU) ExchangeAF() {
	mc.A, mc.Alt.A = mc.Alt.A, mc.A
	mc.F, mc.Alt.F = mc.Alt.F, mc.F
}

// Exchange swaps BC, DE and HL with the shadow set.
func (mc *CPU) Exchange() {
	swap := func(a, b *registers.Pair) {
		v := a.Value()
		a.Load(b.Value())
		b.Load(v)
	}
	swap(&mc.BC, &mc.Alt.BC)
	swap(&mc.DE, &mc.Alt.DE)
	swap(&mc.HL, &mc.Alt.HL)
}

// Registers returns the value of every register keyed by name. Shadow
// registers have an apostrophe suffix.
func (mc *CPU) Registers() map[string]uint32 {
	return map[string]uint32{
		"PC":  uint32(mc.PC.Address()),
		"SP":  uint32(mc.SP.Address()),
		"AF":  uint32(mc.AF()),
		"BC":  uint32(mc.BC.Value()),
		"DE":  uint32(mc.DE.Value()),
		"HL":  uint32(mc.HL.Value()),
		"AF'": uint32(mc.Alt.A)<<8 | uint32(mc.Alt.F),
		"BC'": uint32(mc.Alt.BC.Value()),
		"DE'": uint32(mc.Alt.DE.Value()),
		"HL'": uint32(mc.Alt.HL.Value()),
		"IX":  uint32(mc.IX.Value()),
		"IY":  uint32(mc.IY.Value()),
		"I":   uint32(mc.I),
		"R":   uint32(mc.R),
		"IM":  uint32(mc.IM),
	}
}
