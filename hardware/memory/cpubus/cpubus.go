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

package cpubus

// Memory defines the operations for the memory system when accessed from a CPU
// with a 16 bit address bus. The CPU does not care how the address is decoded.
// Mirrors, bank switching and memory mapped registers are all the
// responsibility of the implementation.
//
// There is no error path. A read from an address with nothing behind it should
// return whatever the implementation thinks the data bus would float to.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// LongMemory is the equivalent of Memory for a CPU with a 24 bit address bus.
// Only the lower 24 bits of the address are meaningful.
type LongMemory interface {
	ReadLong(address uint32) uint8
	WriteLong(address uint32, data uint8)
}

// Ports is optionally implemented by a Memory implementation that has devices
// on a separate I/O address space. CPUs that have IN and OUT instructions will
// check for the interface. If it is not present then the port is treated as
// being unconnected.
type Ports interface {
	IORead(port uint16) uint8
	IOWrite(port uint16, data uint8)
}

// Unconnected is the value read from a port that has nothing connected to it.
const Unconnected = uint8(0xff)

// ReadPort reads from the port if the memory implementation supports Ports.
// Otherwise the Unconnected value is returned.
func ReadPort(mem Memory, port uint16) uint8 {
	if p, ok := mem.(Ports); ok {
		return p.IORead(port)
	}
	return Unconnected
}

// WritePort writes to the port if the memory implementation supports Ports.
// Otherwise the write is dropped.
func WritePort(mem Memory, port uint16, data uint8) {
	if p, ok := mem.(Ports); ok {
		p.IOWrite(port, data)
	}
}

// Read16 reads a little-endian 16 bit value from two consecutive addresses.
// The second address wraps at the top of memory.
func Read16(mem Memory, address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a little-endian 16 bit value to two consecutive addresses.
func Write16(mem Memory, address uint16, data uint16) {
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}
