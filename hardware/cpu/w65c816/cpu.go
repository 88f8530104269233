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
	"fmt"

	"github.com/jetsetilly/gophercores/diagnostics"
	"github.com/jetsetilly/gophercores/hardware/cpu/execution"
	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
)

const coreName = "65c816"

// the number of cycles consumed by a step while the CPU is stopped or waiting.
const idleCycles = 3

var stopped = instructions.Definition{
	OpCode:   0xdb,
	Operator: "STOPPED",
	Cycles:   idleCycles,
	Effect:   instructions.Interrupt,
}

var waiting = instructions.Definition{
	OpCode:   0xcb,
	Operator: "WAITING",
	Cycles:   idleCycles,
	Effect:   instructions.Interrupt,
}

// CPU implements the WDC 65C816.
type CPU struct {
	// accumulator and index registers. the accumulator is called C when
	// referring to all sixteen bits
	C registers.Data
	X registers.Data
	Y registers.Data

	S registers.StackPointer

	// direct page register
	D uint16

	// data bank and program bank registers
	DBR uint8
	PBR uint8

	PC     registers.ProgramCounter
	Status StatusRegister

	// the CPU is in 6502 emulation mode
	Emulation bool

	// the CPU has executed a WAI instruction and is waiting for an interrupt
	Waiting bool

	// the CPU has executed a STP instruction. only a reset will restart it
	Stopped bool

	// the total number of cycles consumed since the last reset
	Cycles uint64

	// the result of the most recent call to Step()
	LastResult execution.Result

	mem  cpubus.LongMemory
	diag diagnostics.Sink

	// number of operand bytes read during the current step
	operandBytes int
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is in its power-on state. The reset vector is not read until Reset() is
// called.
func NewCPU(mem cpubus.LongMemory) *CPU {
	mc := &CPU{
		mem:  mem,
		diag: diagnostics.Discard,
	}
	mc.powerOn()
	return mc
}

func (mc *CPU) powerOn() {
	mc.C = registers.NewData(0, "C")
	mc.X = registers.NewData(0, "X")
	mc.Y = registers.NewData(0, "Y")
	mc.S = registers.NewStackPointer(0x01ff, "S")
	mc.S.Pin(0x01)
	mc.D = 0
	mc.DBR = 0
	mc.PBR = 0
	mc.PC = registers.NewProgramCounter(0)
	mc.Status.Load(0x34)
	mc.Emulation = true
	mc.Waiting = false
	mc.Stopped = false
	mc.Cycles = 0
	mc.LastResult.Reset()
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.LongMemory) {
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
	mode := "N"
	if mc.Emulation {
		mode = "E"
	}
	return fmt.Sprintf("PC=%02x:%s %s %s %s %s D=%04x DBR=%02x %s %s",
		mc.PBR, mc.PC, mc.C, mc.X, mc.Y, mc.S, mc.D, mc.DBR, mc.Status, mode)
}

// Reset the CPU. The power-on state is reapplied and the PC is loaded from
// the reset vector.
func (mc *CPU) Reset() {
	mc.powerOn()
	mc.PC.Load(mc.read16Bank0(cpubus.Reset))
}

// CycleCount returns the number of cycles consumed since the last reset.
func (mc *CPU) CycleCount() uint64 {
	return mc.Cycles
}

// ProgramCounter returns the full 24 bit address of the next instruction.
func (mc *CPU) ProgramCounter() uint32 {
	return uint32(mc.PBR)<<16 | uint32(mc.PC.Address())
}

// Result returns the result of the most recent call to Step().
func (mc *CPU) Result() execution.Result {
	return mc.LastResult
}

// AccumulatorWidth returns the current width of the accumulator and of
// memory operands.
func (mc *CPU) AccumulatorWidth() registers.Width {
	if mc.Emulation || mc.Status.MemorySelect {
		return registers.Bits8
	}
	return registers.Bits16
}

// IndexWidth returns the current width of the X and Y registers.
func (mc *CPU) IndexWidth() registers.Width {
	if mc.Emulation || mc.Status.IndexSelect {
		return registers.Bits8
	}
	return registers.Bits16
}

// Accumulator returns the value of the accumulator at the current width.
func (mc *CPU) Accumulator() uint16 {
	return mc.C.Value(mc.AccumulatorWidth())
}

// SetAccumulator sets the accumulator at the current width. In eight bit mode
// the upper byte (B) is preserved.
func (mc *CPU) SetAccumulator(v uint16) {
	mc.C.Load(v, mc.AccumulatorWidth())
}

// IndexX returns the value of the X register at the current width.
func (mc *CPU) IndexX() uint16 {
	return mc.X.Value(mc.IndexWidth())
}

// SetIndexX sets the X register at the current width.
func (mc *CPU) SetIndexX(v uint16) {
	mc.X.Load(v, mc.IndexWidth())
}

// IndexY returns the value of the Y register at the current width.
func (mc *CPU) IndexY() uint16 {
	return mc.Y.Value(mc.IndexWidth())
}

// SetIndexY sets the Y register at the current width.
func (mc *CPU) SetIndexY(v uint16) {
	mc.Y.Load(v, mc.IndexWidth())
}

// SetStatus loads the status register. In emulation mode the M and X bits
// cannot be cleared. Setting the X bit clears the upper byte of the index
// registers.
func (mc *CPU) SetStatus(v uint8) {
	mc.Status.Load(v)
	if mc.Emulation {
		mc.Status.MemorySelect = true
		mc.Status.IndexSelect = true
	}
	if mc.Status.IndexSelect {
		mc.X.SetHigh(0)
		mc.Y.SetHigh(0)
	}
}

// SetEmulation switches between emulation and native mode. Entering emulation
// mode forces eight bit registers and pins the stack pointer to page one.
func (mc *CPU) SetEmulation(on bool) {
	mc.Emulation = on
	if on {
		mc.SetStatus(mc.Status.Value())
		mc.S.Pin(0x01)
	} else {
		mc.S.Unpin()
	}
}

// Step executes exactly one instruction and returns the number of cycles it
// consumed. A stopped or waiting CPU does nothing but still consumes cycles.
func (mc *CPU) Step() int {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.ProgramCounter()
	mc.operandBytes = 0

	switch {
	case mc.Stopped:
		mc.LastResult.Defn = &stopped
		mc.LastResult.Cycles = idleCycles
	case mc.Waiting:
		mc.LastResult.Defn = &waiting
		mc.LastResult.Cycles = idleCycles
	default:
		mc.execute()
	}

	mc.LastResult.Final = true
	mc.Cycles += uint64(mc.LastResult.Cycles)

	return mc.LastResult.Cycles
}
