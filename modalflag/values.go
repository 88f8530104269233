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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophercores/curated"
)

// InvalidAddress is the error pattern returned by ParseAddress().
const InvalidAddress = "modalflag: invalid address (%s)"

// ParseAddress converts a string to an address of up to 24 bits. The string
// can be hexadecimal with a 0x or $ prefix, or with an h suffix. Otherwise it
// is parsed as a decimal number.
func ParseAddress(s string) (uint32, error) {
	v := strings.TrimSpace(s)

	base := 10
	switch {
	case strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X"):
		v = v[2:]
		base = 16
	case strings.HasPrefix(v, "$"):
		v = v[1:]
		base = 16
	case strings.HasSuffix(v, "h") || strings.HasSuffix(v, "H"):
		v = v[:len(v)-1]
		base = 16
	}

	a, err := strconv.ParseUint(v, base, 32)
	if err != nil || a > 0xffffff {
		return 0, curated.Errorf(InvalidAddress, s)
	}

	return uint32(a), nil
}

// address implements the flag.Value interface.
type address uint32

func (a *address) String() string {
	return fmt.Sprintf("%#04x", uint32(*a))
}

func (a *address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = address(v)
	return nil
}

// OptionalBool is a boolean flag that remembers whether it has been set.
type OptionalBool struct {
	value *bool
}

// Get returns the value of the flag and whether it was set on the command
// line.
func (o *OptionalBool) Get() (value bool, set bool) {
	if o.value == nil {
		return false, false
	}
	return *o.value, true
}

func (o *OptionalBool) String() string {
	if o.value == nil {
		return "unset"
	}
	return strconv.FormatBool(*o.value)
}

// Set implements the flag.Value interface.
func (o *OptionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

// IsBoolFlag allows the flag to be given without a value.
func (o *OptionalBool) IsBoolFlag() bool {
	return true
}
