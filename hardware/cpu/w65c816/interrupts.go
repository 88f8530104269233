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
	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
)

// Signal is a hardware interrupt line.
type Signal int

// List of valid Signal values.
const (
	IRQ Signal = iota
	NMI
	Abort
)

func (s Signal) String() string {
	switch s {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	case Abort:
		return "ABORT"
	}
	return "unknown signal"
}

// the number of cycles consumed when a hardware interrupt is accepted in
// emulation mode. native mode takes one more cycle to push the program bank.
const interruptCycles = 7

func (s Signal) vector(emulation bool) uint16 {
	if emulation {
		switch s {
		case NMI:
			return cpubus.EmulationNMI
		case Abort:
			return cpubus.EmulationAbort
		}
		return cpubus.EmulationIRQ
	}

	switch s {
	case NMI:
		return cpubus.NativeNMI
	case Abort:
		return cpubus.NativeAbort
	}
	return cpubus.NativeIRQ
}

// Interrupt signals a hardware interrupt. The interrupt is serviced
// immediately, between instructions.
//
// An IRQ is ignored if the InterruptDisable flag is set. However, an IRQ will
// still release the CPU from a WAI instruction, in which case execution
// continues with the instruction following the WAI. A stopped CPU ignores all
// interrupts.
//
// Returns the number of cycles consumed by servicing the interrupt, which will
// be zero if the interrupt was ignored.
func (mc *CPU) Interrupt(s Signal) int {
	if mc.Stopped {
		return 0
	}

	if s == IRQ && mc.Status.InterruptDisable {
		mc.Waiting = false
		return 0
	}

	mc.Waiting = false

	cycles := interruptCycles
	if !mc.Emulation {
		cycles++
	}

	mc.enterInterrupt(s.vector(mc.Emulation), false)
	mc.Cycles += uint64(cycles)

	return cycles
}

// enterInterrupt pushes the return state and jumps through the vector. in
// emulation mode bit 4 of the pushed status register distinguishes BRK from a
// hardware interrupt.
func (mc *CPU) enterInterrupt(vector uint16, brk bool) {
	if !mc.Emulation {
		mc.Push8(mc.PBR)
	}
	mc.Push16(mc.PC.Address())

	p := mc.Status.Value()
	if mc.Emulation && !brk {
		p &^= 0x10
	}
	mc.Push8(p)

	mc.Status.InterruptDisable = true
	mc.Status.DecimalMode = false
	mc.PBR = 0
	mc.PC.Load(mc.read16Bank0(vector))
}

// Registers returns the value of every register keyed by name. The status
// register is under "P" and the emulation flag under "E".
func (mc *CPU) Registers() map[string]uint32 {
	e := uint32(0)
	if mc.Emulation {
		e = 1
	}
	return map[string]uint32{
		"PC":  mc.ProgramCounter(),
		"C":   uint32(mc.C.Full()),
		"X":   uint32(mc.X.Full()),
		"Y":   uint32(mc.Y.Full()),
		"S":   uint32(mc.S.Address()),
		"D":   uint32(mc.D),
		"DBR": uint32(mc.DBR),
		"PBR": uint32(mc.PBR),
		"P":   uint32(mc.Status.Value()),
		"E":   e,
	}
}
