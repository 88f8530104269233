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

package w65c816_test

import (
	"testing"

	"github.com/jetsetilly/gophercores/diagnostics"
	"github.com/jetsetilly/gophercores/hardware/cpu/w65c816"
	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
	"github.com/jetsetilly/gophercores/test"
)

func TestEmulationInterrupts(t *testing.T) {
	mc, mem := newCPU(
		0x58, // CLI
		0x78, // SEI
	)
	mem.putVector(cpubus.EmulationIRQ, 0x9000)
	mem.putVector(cpubus.EmulationNMI, 0x9100)
	mem.putInstructions(0x9000, 0x40) // RTI

	step(t, mc)
	test.ExpectEquality(t, mc.Interrupt(w65c816.IRQ), 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01fc))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	test.ExpectEquality(t, mc.CycleCount(), uint64(9))
	mem.assert(t, 0x01ff, 0x80)
	mem.assert(t, 0x01fe, 0x01)

	// the break bit is clear for a hardware interrupt
	mem.assert(t, 0x01fd, 0x20)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8001))
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x30))
	test.ExpectFailure(t, mc.Status.InterruptDisable)

	// IRQ is masked but NMI is not
	step(t, mc)
	test.ExpectEquality(t, mc.Interrupt(w65c816.IRQ), 0)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8002))
	test.ExpectEquality(t, mc.Interrupt(w65c816.NMI), 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9100))
}

func TestNativeInterrupts(t *testing.T) {
	mc, mem := newCPU(
		0x18, // CLC
		0xfb, // XCE
	)
	mem.putVector(cpubus.NativeNMI, 0xa000)
	mem.putInstructions(0xa000, 0x40) // RTI

	step(t, mc)
	step(t, mc)

	// native mode pushes the program bank and takes an extra cycle
	test.ExpectEquality(t, mc.Interrupt(w65c816.NMI), 8)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xa000))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01fb))
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x80)
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x35)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.ProgramCounter(), uint32(0x008002))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01ff))
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x35))
}

func TestSoftwareInterrupts(t *testing.T) {
	mc, mem := newCPU(
		0x00, 0x99, // BRK
	)
	mem.putVector(cpubus.EmulationIRQ, 0x9000)
	mem.putVector(cpubus.NativeBRK, 0x9200)
	mem.putVector(cpubus.NativeCOP, 0x9300)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
	test.ExpectEquality(t, mc.LastResult.Disassemble(), "BRK $99")
	mem.assert(t, 0x01fe, 0x02)

	// the break bit is set for BRK
	mem.assert(t, 0x01fd, 0x34)

	// native mode has separate vectors for BRK and COP
	mc.SetEmulation(false)
	mem.putInstructions(0x9000, 0x00, 0x00, 0x02, 0x00)

	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9200))

	mc.PC.Load(0x9002)
	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9300))
	test.ExpectFailure(t, mc.Status.DecimalMode)
}

func TestWait(t *testing.T) {
	mc, _ := newCPU(
		0xcb, // WAI
		0xea, // NOP
	)

	step(t, mc)
	test.ExpectSuccess(t, mc.Waiting)

	// a waiting CPU consumes cycles without advancing
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.LastResult.Defn.Operator, "WAITING")
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8001))

	// a masked IRQ releases the CPU without being serviced
	test.ExpectEquality(t, mc.Interrupt(w65c816.IRQ), 0)
	test.ExpectFailure(t, mc.Waiting)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Defn.Operator, w65c816.NOP)
}

func TestStop(t *testing.T) {
	mc, _ := newCPU(
		0xdb, // STP
	)
	counter := diagnostics.NewCounter(nil)
	mc.SetDiagnostics(counter)

	step(t, mc)
	test.ExpectSuccess(t, mc.Stopped)
	test.ExpectEquality(t, counter.Count(diagnostics.Stopped), 1)

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.LastResult.Defn.Operator, "STOPPED")
	test.ExpectEquality(t, mc.Interrupt(w65c816.NMI), 0)

	// only a reset restarts the CPU
	mc.Reset()
	test.ExpectFailure(t, mc.Stopped)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8000))
}

func TestRegisters(t *testing.T) {
	mc, _ := newCPU()
	mc.DBR = 0x7e
	r := mc.Registers()
	test.ExpectEquality(t, r["PC"], uint32(0x008000))
	test.ExpectEquality(t, r["DBR"], uint32(0x7e))
	test.ExpectEquality(t, r["P"], uint32(0x34))
	test.ExpectEquality(t, r["E"], uint32(1))
	test.ExpectEquality(t, r["S"], uint32(0x01ff))
}
