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

package cpu

import (
	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/diagnostics"
	"github.com/jetsetilly/gophercores/hardware/cpu/execution"
	"github.com/jetsetilly/gophercores/hardware/cpu/i8080"
	"github.com/jetsetilly/gophercores/hardware/cpu/w65c816"
	"github.com/jetsetilly/gophercores/hardware/cpu/z80"
	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
)

// Interpreter is implemented by every CPU core. Interrupts are not part of
// the interface because each core signals them differently.
type Interpreter interface {
	Reset()
	Step() int
	CycleCount() uint64
	ProgramCounter() uint32
	Result() execution.Result
	SetDiagnostics(diagnostics.Sink)
	Registers() map[string]uint32
	String() string
}

// WrongMemory is the error pattern returned by NewInterpreter() when the
// memory does not implement the interface required by the core.
const WrongMemory = "cpu: %s requires %s memory"

// NewInterpreter creates a core for the Arch. The 65C816 requires mem to
// implement cpubus.LongMemory. The other cores require cpubus.Memory.
func NewInterpreter(arch Arch, mem any) (Interpreter, error) {
	switch arch {
	case W65C816:
		m, ok := mem.(cpubus.LongMemory)
		if !ok {
			return nil, curated.Errorf(WrongMemory, arch, "24 bit")
		}
		return w65c816.NewCPU(m), nil
	case I8080:
		m, ok := mem.(cpubus.Memory)
		if !ok {
			return nil, curated.Errorf(WrongMemory, arch, "16 bit")
		}
		return i8080.NewCPU(m), nil
	case Z80:
		m, ok := mem.(cpubus.Memory)
		if !ok {
			return nil, curated.Errorf(WrongMemory, arch, "16 bit")
		}
		return z80.NewCPU(m), nil
	}
	return nil, curated.Errorf(UnknownArch, arch)
}

// Idle returns true if the core will do nothing until it is interrupted or
// reset. That is, an 8080 or Z80 that has executed a HALT, or a 65C816 that
// has executed STP or WAI.
func Idle(mc Interpreter) bool {
	switch mc := mc.(type) {
	case *i8080.CPU:
		return mc.Halted
	case *z80.CPU:
		return mc.Halted
	case *w65c816.CPU:
		return mc.Stopped || mc.Waiting
	}
	return false
}

// Jump sets the address of the next instruction. For the 65C816 the program
// bank is taken from bits 16 to 23 of the address. For the other cores the
// address is truncated to 16 bits.
func Jump(mc Interpreter, address uint32) {
	switch mc := mc.(type) {
	case *i8080.CPU:
		mc.PC.Load(uint16(address))
	case *z80.CPU:
		mc.PC.Load(uint16(address))
	case *w65c816.CPU:
		mc.PBR = uint8(address >> 16)
		mc.PC.Load(uint16(address))
	}
}
