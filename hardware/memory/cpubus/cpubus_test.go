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

package cpubus_test

import (
	"testing"

	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
	"github.com/jetsetilly/gophercores/test"
)

type flat struct {
	data [0x10000]uint8
}

func (m *flat) Read(address uint16) uint8 {
	return m.data[address]
}

func (m *flat) Write(address uint16, data uint8) {
	m.data[address] = data
}

type withPorts struct {
	flat
	ports [0x10000]uint8
}

func (m *withPorts) IORead(port uint16) uint8 {
	return m.ports[port]
}

func (m *withPorts) IOWrite(port uint16, data uint8) {
	m.ports[port] = data
}

func TestUnconnectedPorts(t *testing.T) {
	mem := &flat{}
	test.ExpectEquality(t, cpubus.ReadPort(mem, 0x10), cpubus.Unconnected)
	test.ExpectEquality(t, cpubus.ReadPort(mem, 0xfe), uint8(0xff))

	// writing to an unconnected port must not touch memory
	cpubus.WritePort(mem, 0x10, 0x55)
	test.ExpectEquality(t, mem.Read(0x10), uint8(0x00))
}

func TestConnectedPorts(t *testing.T) {
	mem := &withPorts{}
	cpubus.WritePort(mem, 0x10, 0x55)
	test.ExpectEquality(t, cpubus.ReadPort(mem, 0x10), uint8(0x55))
	test.ExpectEquality(t, mem.Read(0x10), uint8(0x00))
}

func TestRead16(t *testing.T) {
	mem := &flat{}
	cpubus.Write16(mem, 0x1000, 0xbeef)
	test.ExpectEquality(t, mem.Read(0x1000), uint8(0xef))
	test.ExpectEquality(t, mem.Read(0x1001), uint8(0xbe))
	test.ExpectEquality(t, cpubus.Read16(mem, 0x1000), uint16(0xbeef))

	// wrap at top of memory
	cpubus.Write16(mem, 0xffff, 0x1234)
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x34))
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x12))
	test.ExpectEquality(t, cpubus.Read16(mem, 0xffff), uint16(0x1234))
}

func TestVectors(t *testing.T) {
	// the emulation mode vectors are at the same addresses as the 6502
	test.ExpectEquality(t, cpubus.Reset, uint16(0xfffc))
	test.ExpectEquality(t, cpubus.EmulationNMI, uint16(0xfffa))
	test.ExpectEquality(t, cpubus.EmulationIRQ, uint16(0xfffe))

	// native vectors are all sixteen bytes below the emulation equivalent
	test.ExpectEquality(t, cpubus.EmulationCOP-cpubus.NativeCOP, uint16(0x10))
	test.ExpectEquality(t, cpubus.EmulationAbort-cpubus.NativeAbort, uint16(0x10))
	test.ExpectEquality(t, cpubus.EmulationNMI-cpubus.NativeNMI, uint16(0x10))
	test.ExpectEquality(t, cpubus.EmulationIRQ-cpubus.NativeIRQ, uint16(0x10))
}
