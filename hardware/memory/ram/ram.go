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

package ram

import (
	"fmt"
	"strings"
)

// RAM is a flat 64KB memory with a separate 64K port address space. It
// implements the cpubus.Memory and cpubus.Ports interfaces.
type RAM struct {
	memory [0x10000]uint8

	// port inputs are set by the host. ports without an input value read as
	// unconnected
	inputs map[uint16]uint8

	// the most recent value written to each port
	outputs map[uint16]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		inputs:  make(map[uint16]uint8),
		outputs: make(map[uint16]uint8),
	}
}

func (r *RAM) String() string {
	return dump(func(a uint32) uint8 { return r.memory[uint16(a)] }, 0, 0x100)
}

// Read implements the cpubus.Memory interface.
func (r *RAM) Read(address uint16) uint8 {
	return r.memory[address]
}

// Write implements the cpubus.Memory interface.
func (r *RAM) Write(address uint16, data uint8) {
	r.memory[address] = data
}

// IORead implements the cpubus.Ports interface.
func (r *RAM) IORead(port uint16) uint8 {
	if v, ok := r.inputs[port]; ok {
		return v
	}
	return 0xff
}

// IOWrite implements the cpubus.Ports interface.
func (r *RAM) IOWrite(port uint16, data uint8) {
	r.outputs[port] = data
}

// SetInput sets the value that will be read from the port.
func (r *RAM) SetInput(port uint16, data uint8) {
	r.inputs[port] = data
}

// Output returns the value most recently written to the port. The boolean
// is false if the port has never been written to.
func (r *RAM) Output(port uint16) (uint8, bool) {
	v, ok := r.outputs[port]
	return v, ok
}

// Load copies data into memory starting at origin. Data that would extend
// beyond the top of memory wraps to address zero.
func (r *RAM) Load(origin uint16, data []uint8) {
	for i, d := range data {
		r.memory[origin+uint16(i)] = d
	}
}

// Dump returns a hex dump of the memory between the two addresses.
func (r *RAM) Dump(from uint16, length int) string {
	return dump(func(a uint32) uint8 { return r.memory[uint16(a)] }, uint32(from), length)
}

// the number of banks in a 24 bit address space.
const numBanks = 256

// Long is a flat 16MB memory for CPUs with a 24 bit address bus. It implements
// the cpubus.LongMemory interface. Memory is allocated one 64KB bank at a time
// and only when the bank is first written to.
type Long struct {
	banks [numBanks][]uint8
}

// NewLong is the preferred method of initialisation for the Long type.
func NewLong() *Long {
	return &Long{}
}

func (l *Long) String() string {
	return l.Dump(0, 0x100)
}

// ReadLong implements the cpubus.LongMemory interface.
func (l *Long) ReadLong(address uint32) uint8 {
	b := l.banks[(address>>16)&0xff]
	if b == nil {
		return 0
	}
	return b[address&0xffff]
}

// WriteLong implements the cpubus.LongMemory interface.
func (l *Long) WriteLong(address uint32, data uint8) {
	bank := (address >> 16) & 0xff
	if l.banks[bank] == nil {
		l.banks[bank] = make([]uint8, 0x10000)
	}
	l.banks[bank][address&0xffff] = data
}

// Load copies data into memory starting at origin. Data that would extend
// beyond the top of memory wraps to address zero.
func (l *Long) Load(origin uint32, data []uint8) {
	for i, d := range data {
		l.WriteLong((origin+uint32(i))&0xffffff, d)
	}
}

// Dump returns a hex dump of the memory starting at the address.
func (l *Long) Dump(from uint32, length int) string {
	return dump(l.ReadLong, from, length)
}

func dump(read func(uint32) uint8, from uint32, length int) string {
	s := strings.Builder{}
	s.WriteString("         -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("       ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	base := from &^ 0x0f
	for row := base; row < from+uint32(length); row += 16 {
		s.WriteString(fmt.Sprintf("%06x | ", row))
		for x := uint32(0); x < 16; x++ {
			a := row + x
			if a < from || a >= from+uint32(length) {
				s.WriteString("   ")
				continue
			}
			s.WriteString(fmt.Sprintf(" %02x", read(a)))
		}
		s.WriteString("\n")
	}

	return strings.TrimRight(s.String(), "\n")
}
