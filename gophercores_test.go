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

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophercores/logger"
	"github.com/jetsetilly/gophercores/test"
)

func writeImage(t *testing.T, data []uint8) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "image.bin")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o644))
	return filename
}

func TestVersionMode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), w, []string{"version"}), exitOK)
	test.ExpectSuccess(t, w.Contains("Gophercores"))
}

func TestRunMode(t *testing.T) {
	// LD A,$02; DEC A; JR NZ,-3; HALT
	image := writeImage(t, []uint8{0x3e, 0x02, 0x3d, 0x20, 0xfd, 0x76})

	w := &test.CompareWriter{}
	args := []string{"-arch", "z80", "-origin", "$8000", "-state", "-", image}
	test.ExpectEquality(t, launch(context.Background(), w, args), exitOK)
	test.ExpectSuccess(t, w.Contains("6 steps"))
	test.ExpectSuccess(t, w.Contains(`"pc": 32774`))

	// RUN is the default mode so it can also be named
	w.Clear()
	args = []string{"RUN", "-arch", "z80", "-entry", "0x8002", "-origin", "0x8000", "-steps", "2", image}
	test.ExpectEquality(t, launch(context.Background(), w, args), exitOK)
	test.ExpectSuccess(t, w.Contains("2 steps"))
	test.ExpectSuccess(t, w.Contains("step limit"))
}

func TestArgumentErrors(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), w, []string{"-nosuchflag"}), exitArgs)

	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), w, []string{"run"}), exitMode)
	test.ExpectSuccess(t, w.Contains("binary image required"))

	w.Clear()
	image := writeImage(t, []uint8{0x76})
	test.ExpectEquality(t, launch(context.Background(), w, []string{"run", "-arch", "6502", image}), exitMode)
	test.ExpectSuccess(t, w.Contains("unknown architecture"))
}

func TestCancelledRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &test.CompareWriter{}
	image := writeImage(t, []uint8{0x00})
	test.ExpectEquality(t, launch(ctx, w, []string{"-arch", "8080", image}), exitOK)
	test.ExpectSuccess(t, w.Contains("stopped (cancelled)"))
}

func TestBreakFlag(t *testing.T) {
	image := writeImage(t, []uint8{0x3e, 0x02, 0x3d, 0x20, 0xfd, 0x76})

	w := &test.CompareWriter{}
	args := []string{"-arch", "z80", "-break", "PC=2; $0005", "-trap", "SP", image}
	test.ExpectEquality(t, launch(context.Background(), w, args), exitOK)
	test.ExpectSuccess(t, w.Contains("1 steps, 7 cycles, stopped (breakpoint: break on PC->0002)"))
}

func TestLogTail(t *testing.T) {
	// undefined ED opcode; HALT
	image := writeImage(t, []uint8{0xed, 0x00, 0x76})

	w := &test.CompareWriter{}
	args := []string{"-arch", "z80", "-diag", "-logtail", "1", image}
	test.ExpectEquality(t, launch(context.Background(), w, args), exitOK)
	test.ExpectSuccess(t, w.Contains("2 steps"))
	test.ExpectSuccess(t, w.Contains("z80: unknown opcode ed 00 at 000000"))

	// without the diagnostics gate the core does not log
	logger.Clear()
	w.Clear()
	args = []string{"-arch", "z80", "-diag=false", "-logtail", "1", image}
	test.ExpectEquality(t, launch(context.Background(), w, args), exitOK)
	test.ExpectFailure(t, w.Contains("at 000000"))
}
