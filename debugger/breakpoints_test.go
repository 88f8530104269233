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
	"strings"
	"testing"

	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/debugger"
	"github.com/jetsetilly/gophercores/hardware/cpu"
	"github.com/jetsetilly/gophercores/test"
)

func TestBreakpoints(t *testing.T) {
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:        cpu.I8080,
		Filename:    writeImage(t, countdown),
		Origin:      0x0100,
		Breakpoints: []string{"PC=0x0102"},
		Traps:       []string{"sp"},
	})
	test.ExpectEquality(t, dbg.Halts(), "breakpoints:\n 0: PC->0102\ntraps: SP")

	s, err := dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopBreak)
	test.ExpectEquality(t, s.Steps, 1)
	test.ExpectEquality(t, s.Detail, "break on PC->0102")

	// the breakpoint does not trigger again until the PC has moved away and
	// come back
	s, err = dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopBreak)
	test.ExpectEquality(t, s.Steps, 3)
}

func TestConditionalBreakpoints(t *testing.T) {
	// the HL condition is never true so the breakpoint never triggers
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:        cpu.I8080,
		Filename:    writeImage(t, countdown),
		Origin:      0x0100,
		Breakpoints: []string{"PC=$0107 & HL=1"},
	})
	s, err := dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopIdle)

	dbg, _ = newDebugger(t, debugger.Config{
		Arch:        cpu.I8080,
		Filename:    writeImage(t, countdown),
		Origin:      0x0100,
		Breakpoints: []string{"PC=$0107 & HL=0"},
	})
	s, err = dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopBreak)
	test.ExpectEquality(t, s.Steps, 12)
	test.ExpectEquality(t, s.Detail, "break on PC->0107 & HL->0000")
}

func TestTraps(t *testing.T) {
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:     cpu.I8080,
		Filename: writeImage(t, countdown),
		Origin:   0x0100,
		Traps:    []string{"PSW"},
	})

	s, err := dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopTrap)
	test.ExpectEquality(t, s.Steps, 1)
	test.ExpectSuccess(t, strings.HasPrefix(s.Detail, "trap on PSW"))
}

func TestBreakpointErrors(t *testing.T) {
	for _, b := range [][]string{
		{"Q=1"},
		{"PC=zz"},
		{"PC=1 &"},
		{"PC=0x102", "0x0102"},
	} {
		_, err := debugger.NewDebugger(debugger.Config{
			Arch:        cpu.Z80,
			Breakpoints: b,
		})
		test.ExpectSuccess(t, curated.Is(err, debugger.BreakpointError), b)
	}

	for _, tr := range [][]string{
		{"Q"},
		{"PC", "pc"},
	} {
		_, err := debugger.NewDebugger(debugger.Config{
			Arch:  cpu.Z80,
			Traps: tr,
		})
		test.ExpectSuccess(t, curated.Is(err, debugger.BreakpointError), tr)
	}
}

func TestDump(t *testing.T) {
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:     cpu.I8080,
		Filename: writeImage(t, countdown),
		Origin:   0x0100,
	})
	test.ExpectSuccess(t, strings.Contains(dbg.Dump(0x0100, len(countdown)), "000100 |  3e 05 3d c2 02 01 08 76"))

	dbg.Poke(0x0101, 0x02)
	test.ExpectEquality(t, dbg.Peek(0x0101), uint8(0x02))
}
