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
	"strings"

	"github.com/jetsetilly/gophercores/curated"
)

// Arch identifies one of the CPU cores.
type Arch int

// List of valid Arch values.
const (
	W65C816 Arch = iota
	I8080
	Z80
)

// Architectures lists the name of every Arch, in the form accepted by
// ParseArch().
var Architectures = []string{"65c816", "8080", "z80"}

func (a Arch) String() string {
	if int(a) < 0 || int(a) >= len(Architectures) {
		return "unknown arch"
	}
	return Architectures[a]
}

// UnknownArch is the error pattern returned by ParseArch() and
// NewInterpreter().
const UnknownArch = "cpu: unknown architecture (%s)"

// ParseArch returns the Arch for the name. The name is case insensitive.
func ParseArch(name string) (Arch, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, a := range Architectures {
		if n == a {
			return Arch(i), nil
		}
	}
	return W65C816, curated.Errorf(UnknownArch, name)
}

// AddressWidth returns the number of bits in the address bus of the core.
func (a Arch) AddressWidth() int {
	if a == W65C816 {
		return 24
	}
	return 16
}
