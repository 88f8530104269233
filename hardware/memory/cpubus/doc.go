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

// Package cpubus defines the interfaces through which the CPU cores see the
// rest of the system. The CPU packages only ever use these interfaces and
// never a concrete memory type.
//
// The 8080 and Z80 use the 16 bit Memory interface. The 65C816 uses the 24 bit
// LongMemory interface. Port I/O is optional and is discovered with a type
// assertion on the Ports interface. The ReadPort() and WritePort() helpers
// apply the default behaviour for an unconnected port.
package cpubus
