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

package debugger_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jetsetilly/gophercores/debugger"
	"github.com/jetsetilly/gophercores/hardware/cpu"
	"github.com/jetsetilly/gophercores/test"
)

func TestWriteState(t *testing.T) {
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:     cpu.I8080,
		Filename: writeImage(t, countdown),
		Origin:   0x0100,
	})

	_, err := dbg.Run(context.Background())
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.DemandSuccess(t, dbg.WriteState(w))
	test.ExpectSuccess(t, w.Contains(`"arch": "8080"`))

	var s debugger.State
	test.DemandSuccess(t, json.Unmarshal([]byte(w.String()), &s))
	test.ExpectEquality(t, s.PC, uint32(0x0108))
	test.ExpectEquality(t, s.Steps, 13)
	test.ExpectSuccess(t, s.Idle)
	test.ExpectEquality(t, s.Last, "HLT")
	test.ExpectEquality(t, s.Registers["HL"], uint32(0))
}

func TestWriteMemviz(t *testing.T) {
	for _, arch := range []cpu.Arch{cpu.W65C816, cpu.I8080, cpu.Z80} {
		dbg, _ := newDebugger(t, debugger.Config{
			Arch: arch,
		})

		w := &test.CompareWriter{}
		dbg.WriteMemviz(w)
		test.ExpectSuccess(t, w.Contains("digraph"), arch)
	}
}
