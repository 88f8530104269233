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

package execution

import (
	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/hardware/cpu/instructions"
)

// the cost of a prefix byte that has been ignored.
const ignoredPrefixCycles = 4

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no instruction definition")
	}

	bytes := r.Defn.Bytes
	lo, hi := r.Defn.CycleRange()
	if r.IgnoredPrefix {
		bytes++
		lo += ignoredPrefixCycles
		hi += ignoredPrefixCycles
	}

	// byte count. width sensitive immediate instructions can have one more
	// byte than the definition
	if r.ByteCount != bytes {
		widened := r.Defn.Sensitivity != instructions.Fixed &&
			r.Defn.AddressingMode == instructions.Immediate &&
			r.ByteCount == bytes+1
		if !widened {
			return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, bytes)
		}
	}

	if r.Cycles < lo || r.Cycles > hi {
		if lo == hi {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode,
				r.Defn.Operator,
				r.Cycles,
				lo)
		}
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d not between %d and %d)",
			r.Defn.OpCode,
			r.Defn.Operator,
			r.Cycles,
			lo, hi)
	}

	return nil
}
