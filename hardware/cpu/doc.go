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

// Package cpu is the common entry point to the CPU cores. The cores
// themselves are in the w65c816, i8080 and z80 sub-packages and can be used
// directly. A host that selects the core at run time uses NewInterpreter()
// and works through the Interpreter interface.
//
//	mem := ram.NewRAM()
//	mem.Load(0x0000, program)
//
//	mc, err := cpu.NewInterpreter(cpu.Z80, mem)
//	if err != nil {
//		return err
//	}
//
//	for !cpu.Idle(mc) {
//		cycles := mc.Step()
//		...
//	}
//
// The sub-packages alu, instructions, execution and registers are shared by
// all of the cores. After every Step() the result of the instruction is
// available through the Result() function. The Result is useful for tracing
// and disassembly.
package cpu
