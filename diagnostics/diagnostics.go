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

package diagnostics

import (
	"fmt"
	"strings"
)

// Kind of diagnostic.
type Kind int

// List of valid Kind values.
const (
	// an opcode that is not part of the documented instruction set was
	// executed
	UnknownOpcode Kind = iota

	// the CPU has stopped and requires a reset
	Stopped

	// the host has found the CPU or the system in a state that should not be
	// possible
	IllegalState
)

func (k Kind) String() string {
	switch k {
	case UnknownOpcode:
		return "unknown opcode"
	case Stopped:
		return "stopped"
	case IllegalState:
		return "illegal state"
	}
	return "unknown diagnostic"
}

// Diagnostic is a single report from a CPU core.
type Diagnostic struct {
	// the name of the core making the report. eg. "z80"
	Core string

	Kind Kind

	// the address of the instruction that caused the diagnostic
	Address uint32

	// the opcode bytes, including any prefix bytes
	Opcode []uint8

	// any additional information
	Detail string
}

func (d Diagnostic) String() string {
	s := strings.Builder{}
	s.WriteString(d.Kind.String())
	if len(d.Opcode) > 0 {
		s.WriteString(" ")
		for i, o := range d.Opcode {
			if i > 0 {
				s.WriteString(" ")
			}
			s.WriteString(fmt.Sprintf("%02x", o))
		}
	}
	s.WriteString(fmt.Sprintf(" at %06x", d.Address))
	if d.Detail != "" {
		s.WriteString(fmt.Sprintf(" (%s)", d.Detail))
	}
	return s.String()
}

// Sink receives diagnostics from a CPU core. Implementations decide what to do
// with the diagnostic. The core does not know whether the diagnostic will be
// logged or discarded.
//
// The Diagnose() function is called synchronously from the core's Step()
// function and should return quickly.
type Sink interface {
	Diagnose(Diagnostic)
}

type discard struct{}

func (_ discard) Diagnose(_ Diagnostic) {}

// Discard is a Sink that does nothing. It is the default sink for all CPU
// cores.
var Discard Sink = discard{}
