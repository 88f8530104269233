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

package debugger

import (
	"github.com/jetsetilly/gophercores/hardware/cpu"
	"github.com/jetsetilly/gophercores/hardware/memory/ram"
)

// bus is the memory attached to the core. only one of the two fields is
// used, depending on the address width of the architecture.
type bus struct {
	short *ram.RAM
	long  *ram.Long
}

func newBus(arch cpu.Arch) *bus {
	if arch.AddressWidth() > 16 {
		return &bus{long: ram.NewLong()}
	}
	return &bus{short: ram.NewRAM()}
}

// memory returns the value to be passed to cpu.NewInterpreter().
func (b *bus) memory() any {
	if b.long != nil {
		return b.long
	}
	return b.short
}

// Peek implements the script.Memory interface.
func (b *bus) Peek(address uint32) uint8 {
	if b.long != nil {
		return b.long.ReadLong(address & 0xffffff)
	}
	return b.short.Read(uint16(address))
}

// Poke implements the script.Memory interface.
func (b *bus) Poke(address uint32, data uint8) {
	if b.long != nil {
		b.long.WriteLong(address&0xffffff, data)
		return
	}
	b.short.Write(uint16(address), data)
}

func (b *bus) load(origin uint32, data []uint8) {
	if b.long != nil {
		b.long.Load(origin&0xffffff, data)
		return
	}
	b.short.Load(uint16(origin), data)
}

func (b *bus) dump(from uint32, length int) string {
	if b.long != nil {
		return b.long.Dump(from, length)
	}
	return b.short.Dump(uint16(from), length)
}
