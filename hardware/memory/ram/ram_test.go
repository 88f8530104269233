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

package ram_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
	"github.com/jetsetilly/gophercores/hardware/memory/ram"
	"github.com/jetsetilly/gophercores/test"
)

func TestRAM(t *testing.T) {
	mem := ram.NewRAM()
	test.DemandImplements[cpubus.Memory](t, mem)
	test.DemandImplements[cpubus.Ports](t, mem)

	mem.Load(0xfffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectEquality(t, mem.Read(0xfffe), uint8(0x01))
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x02))
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x03))
}

func TestPorts(t *testing.T) {
	mem := ram.NewRAM()

	// unset input reads as unconnected
	test.ExpectEquality(t, cpubus.ReadPort(mem, 0x20), cpubus.Unconnected)

	mem.SetInput(0x20, 0x42)
	test.ExpectEquality(t, cpubus.ReadPort(mem, 0x20), uint8(0x42))

	_, ok := mem.Output(0x30)
	test.ExpectFailure(t, ok)
	cpubus.WritePort(mem, 0x30, 0x99)
	v, ok := mem.Output(0x30)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x99))

	// ports and memory are separate address spaces
	test.ExpectEquality(t, mem.Read(0x30), uint8(0x00))
}

func TestLong(t *testing.T) {
	mem := ram.NewLong()
	test.DemandImplements[cpubus.LongMemory](t, mem)

	// unallocated banks read as zero
	test.ExpectEquality(t, mem.ReadLong(0x7e1234), uint8(0x00))

	mem.WriteLong(0x7e1234, 0xaa)
	test.ExpectEquality(t, mem.ReadLong(0x7e1234), uint8(0xaa))
	test.ExpectEquality(t, mem.ReadLong(0x7f1234), uint8(0x00))

	// only 24 bits of address are used
	test.ExpectEquality(t, mem.ReadLong(0xff7e1234), uint8(0xaa))

	mem.Load(0xfffffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectEquality(t, mem.ReadLong(0xffffff), uint8(0x02))
	test.ExpectEquality(t, mem.ReadLong(0x000000), uint8(0x03))
}

func TestDump(t *testing.T) {
	mem := ram.NewRAM()
	mem.Load(0x0010, []uint8{0xde, 0xad})
	s := mem.Dump(0x0010, 2)
	test.ExpectSuccess(t, strings.Contains(s, "000010 |  de ad"))
}
