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

	"github.com/jetsetilly/gophercores/diagnostics"
	"github.com/jetsetilly/gophercores/hardware/cpu/execution"
	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
)

// the name used to identify the core in diagnostics.
const coreName = "8080"

// the number of cycles consumed by a step while the CPU is halted.
const haltedCycles = 4

// the number of cycles consumed when an interrupt is accepted. the interrupting
// device places an RST instruction on the bus.
const interruptCycles = 11

// the definition used for the result of a step while the CPU is halted.
var halted = instructions.Definition{
	OpCode:   0x76,
	Operator: "HALTED",
	Bytes:    0,
	Cycles:   haltedCycles,
}

// CPU implements the Intel 8080.
type CPU struct {
	PC    registers.ProgramCounter
	SP    registers.StackPointer
	A     uint8
	BC    registers.Pair
	DE    registers.Pair
	HL    registers.Pair
	Flags Flags

	// interrupts are only accepted when InterruptsEnabled is true. the flag is
	// set by EI and cleared by DI and by accepting an interrupt
	InterruptsEnabled bool

	// the CPU has executed a HLT instruction. only an interrupt or a reset
	// will clear the flag
	Halted bool

	// the total number of cycles consumed since the last reset
	Cycles uint64

	// the result of the most recent call to Step()
	LastResult execution.Result

	mem  cpubus.Memory
	diag diagnostics.Sink
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is in the power-on state.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:  mem,
		diag: diagnostics.Discard,
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
	return fmt.Sprintf("%s=%s A=%02x %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.BC, mc.DE, mc.HL, mc.SP,
		mc.Flags.Label(), mc.Flags)
}

// Reset the CPU to the power-on state. All registers are zeroed. The 8080 has
// no reset vector and begins execution at address zero.
func (mc *CPU) Reset() {
	mc.PC = registers.NewProgramCounter(0)
	mc.SP = registers.NewStackPointer(0, "SP")
	mc.A = 0
	mc.BC = registers.NewPair(0, "BC")
	mc.DE = registers.NewPair(0, "DE")
	mc.HL = registers.NewPair(0, "HL")
	mc.Flags = Flags{}
	mc.InterruptsEnabled = false
	mc.Halted = false
	mc.Cycles = 0
	mc.LastResult.Reset()
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

// Step executes exactly one instruction and returns the number of cycles it
// consumed. A halted CPU consumes a fixed number of cycles without reading
// memory.
func (mc *CPU) Step() int {
	mc.LastResult.Reset()
	mc.LastResult.Address = uint32(mc.PC.Address())

	if mc.Halted {
		mc.LastResult.Defn = &halted
		mc.LastResult.Cycles = haltedCycles
		mc.LastResult.Final = true
		mc.Cycles += haltedCycles
		return haltedCycles
	}

	opcode := mc.read8BitPC()
	defn := definitions.Lookup(opcode)
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	operators[opcode](mc)

	if defn.Unknown {
		mc.diag.Diagnose(diagnostics.Diagnostic{
			Core:    coreName,
			Kind:    diagnostics.UnknownOpcode,
			Address: mc.LastResult.Address,
			Opcode:  []uint8{opcode},
		})
	}

	mc.LastResult.Final = true
	mc.Cycles += uint64(mc.LastResult.Cycles)

	return mc.LastResult.Cycles
}

// Interrupt requests a hardware interrupt. The vector is the RST number placed
// on the bus by the interrupting device and is masked to one of the eight
// restart addresses. If interrupts are disabled the request is ignored.
//
// Returns the number of cycles consumed by accepting the interrupt, which will
// be zero if the interrupt was ignored.
func (mc *CPU) Interrupt(vector uint8) int {
	if !mc.InterruptsEnabled {
		return 0
	}

	mc.Halted = false
	mc.InterruptsEnabled = false
	mc.push16(mc.PC.Address())
	mc.PC.Load(uint16(vector & 0x38))
	mc.Cycles += interruptCycles

	return interruptCycles
}

// PSW returns the accumulator and flags as a 16 bit value, in the form
// pushed by PUSH PSW.
func (mc *CPU) PSW() uint16 {
	return uint16(mc.A)<<8 | uint16(mc.Flags.Value())
}

// SetPSW sets the accumulator and flags from a 16 bit value, in the form
// popped by POP PSW.
func (mc *CPU) SetPSW(v uint16) {
	mc.A = uint8(v >> 8)
	mc.Flags.FromValue(uint8(v))
}

// Registers returns the value of every register keyed by name. The flags are
// included in "PSW".
func (mc *CPU) Registers() map[string]uint32 {
	return map[string]uint32{
		"PC":  uint32(mc.PC.Address()),
		"SP":  uint32(mc.SP.Address()),
		"PSW": uint32(mc.PSW()),
		"BC":  uint32(mc.BC.Value()),
		"DE":  uint32(mc.DE.Value()),
		"HL":  uint32(mc.HL.Value()),
	}
}
