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
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/debugger"
	"github.com/jetsetilly/gophercores/diagnostics"
	"github.com/jetsetilly/gophercores/hardware/cpu"
	"github.com/jetsetilly/gophercores/test"
)

// an 8080 program that counts down from five, executes one unused opcode
// and then halts. the program is loaded at 0x0100.
var countdown = []uint8{
	0x3e, 0x05,       // 0100 MVI A,05
	0x3d,             // 0102 DCR A
	0xc2, 0x02, 0x01, // 0103 JNZ 0102
	0x08,             // 0106 unused
	0x76,             // 0107 HLT
}

// thirteen steps in total
const countdownCycles = 7 + 5*(5+10) + 4 + 7

func writeImage(t *testing.T, data []uint8) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "image.bin")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o644))
	return filename
}

func newDebugger(t *testing.T, cfg debugger.Config) (*debugger.Debugger, *test.CompareWriter) {
	t.Helper()
	out := &test.CompareWriter{}
	cfg.Output = out
	dbg, err := debugger.NewDebugger(cfg)
	test.DemandSuccess(t, err)
	t.Cleanup(dbg.CleanUp)
	return dbg, out
}

func TestRunToHalt(t *testing.T) {
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:     cpu.I8080,
		Filename: writeImage(t, countdown),
		Origin:   0x0100,
	})

	s, err := dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopIdle)
	test.ExpectEquality(t, s.Steps, 13)
	test.ExpectEquality(t, s.Cycles, uint64(countdownCycles))
	test.ExpectEquality(t, s.Diagnostics, "unknown opcode: 1")

	// the unused opcode is counted even though the gate is closed
	test.ExpectEquality(t, dbg.Diagnostics().Count(diagnostics.UnknownOpcode), 1)
	test.ExpectFailure(t, dbg.Gate().Enabled())

	test.ExpectEquality(t, dbg.Interpreter().ProgramCounter(), uint32(0x0108))
	test.ExpectEquality(t, dbg.Interpreter().Registers()["PSW"]>>8, uint32(0))
}

func TestStepLimit(t *testing.T) {
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:     cpu.I8080,
		Filename: writeImage(t, countdown),
		Origin:   0x0100,
		Steps:    3,
	})

	s, err := dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopLimit)
	test.ExpectEquality(t, s.Steps, 3)
	test.ExpectEquality(t, s.Cycles, uint64(7+5+10))
	test.ExpectEquality(t, s.Diagnostics, "no diagnostics")

	// running again continues from where the previous run stopped
	s, err = dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Steps, 6)
}

func TestCancelled(t *testing.T) {
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:     cpu.Z80,
		Filename: writeImage(t, countdown),
		Steps:    -1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := dbg.Run(ctx)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopCancelled)
	test.ExpectEquality(t, s.Steps, 0)
}

func TestEntry(t *testing.T) {
	entry := uint32(0x0102)
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:     cpu.I8080,
		Filename: writeImage(t, countdown),
		Origin:   0x0100,
		Entry:    &entry,
	})
	test.ExpectEquality(t, dbg.Interpreter().ProgramCounter(), entry)

	// A is zero so DCR A wraps and the loop runs 256 times
	s, err := dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopIdle)
	test.ExpectEquality(t, s.Steps, 256*2+2)
}

func TestResetVector(t *testing.T) {
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:  cpu.W65C816,
		Reset: true,
	})

	test.DemandSuccess(t, dbg.Load(0xfffc, []uint8{0x00, 0x80}))
	test.DemandSuccess(t, dbg.Load(0x8000, []uint8{
		0x18, // CLC
		0xfb, // XCE
		0xdb, // STP
	}))
	dbg.Reset()
	test.ExpectEquality(t, dbg.Interpreter().ProgramCounter(), uint32(0x8000))

	s, err := dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopIdle)
	test.ExpectEquality(t, s.Steps, 3)
	test.ExpectEquality(t, dbg.Diagnostics().Count(diagnostics.Stopped), 1)
	test.ExpectEquality(t, dbg.State().Registers["E"], uint32(0))
}

func TestLoadErrors(t *testing.T) {
	_, err := debugger.NewDebugger(debugger.Config{
		Arch:     cpu.Z80,
		Filename: filepath.Join(t.TempDir(), "missing.bin"),
	})
	test.ExpectSuccess(t, curated.Is(err, debugger.LoadError))

	_, err = debugger.NewDebugger(debugger.Config{
		Arch:     cpu.Z80,
		Filename: writeImage(t, countdown),
		Origin:   0xfffc,
	})
	test.ExpectSuccess(t, curated.Is(err, debugger.LoadError))

	// the same image fits into the 24 bit address space
	dbg, _ := newDebugger(t, debugger.Config{
		Arch:     cpu.W65C816,
		Filename: writeImage(t, countdown),
		Origin:   0xfffc,
	})
	test.ExpectEquality(t, dbg.Peek(0x010003), countdown[7])

	_, err = debugger.NewDebugger(debugger.Config{
		Arch: cpu.Arch(99),
	})
	test.ExpectSuccess(t, curated.Is(err, debugger.ConfigError))
}

func TestTrace(t *testing.T) {
	dbg, out := newDebugger(t, debugger.Config{
		Arch:     cpu.I8080,
		Filename: writeImage(t, countdown),
		Origin:   0x0100,
		Trace:    true,
	})

	_, err := dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, out.Contains("000100 MVI A,$05"))
	test.ExpectSuccess(t, out.Contains("000107 HLT"))
}

func TestDiagnosticsGate(t *testing.T) {
	t.Setenv(debugger.DiagnosticsEnv, "true")

	dbg, out := newDebugger(t, debugger.Config{
		Arch:     cpu.I8080,
		Filename: writeImage(t, countdown),
		Origin:   0x0100,
		Logrus:   true,
	})
	test.ExpectSuccess(t, dbg.Gate().Enabled())

	_, err := dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, out.Contains("opcode=08"))
	test.ExpectSuccess(t, out.Contains("arch=8080"))

	// the flag takes precedence over the environment
	off := false
	dbg, out = newDebugger(t, debugger.Config{
		Arch:        cpu.I8080,
		Filename:    writeImage(t, countdown),
		Origin:      0x0100,
		Logrus:      true,
		Diagnostics: &off,
	})
	test.ExpectFailure(t, dbg.Gate().Enabled())

	_, err = dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, out.Contains("opcode=08"))
	test.ExpectEquality(t, dbg.Diagnostics().Total(), 1)
}

func TestScript(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "stop.lua")
	err := os.WriteFile(filename, []byte(`
function on_step(address, instruction)
	if address == 0x0106 then
		stop("found")
	end
end
function on_end(steps)
	poke(0x2000, steps)
end
`), 0o644)
	test.DemandSuccess(t, err)

	dbg, _ := newDebugger(t, debugger.Config{
		Arch:     cpu.I8080,
		Filename: writeImage(t, countdown),
		Origin:   0x0100,
		Script:   filename,
	})

	s, err := dbg.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Reason, debugger.StopScript)
	test.ExpectEquality(t, s.Detail, "found")
	test.ExpectEquality(t, s.Steps, 12)
	test.ExpectEquality(t, dbg.Peek(0x2000), uint8(12))
	test.ExpectEquality(t, s.String(), "12 steps, 86 cycles, stopped (script: found), unknown opcode: 1")
}
