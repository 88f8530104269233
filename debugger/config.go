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
	"io"

	"github.com/jetsetilly/gophercores/hardware/cpu"
)

// DiagnosticsEnv is the environment variable that opens the diagnostics gate
// when the Diagnostics field of Config is nil.
const DiagnosticsEnv = "GOPHERCORES_DIAGNOSTICS"

// DefaultSteps is the step limit used when the Steps field of Config is zero.
const DefaultSteps = 1000000

// Config holds the values that can be specified on the command line when
// launching the harness.
type Config struct {
	Arch cpu.Arch

	// the binary image and the address at which it is loaded
	Filename string
	Origin   uint32

	// the address of the first instruction. a nil value means the origin
	Entry *uint32

	// start from the reset vector rather than the entry address. for the
	// 8080 and Z80 the reset address is always zero
	Reset bool

	// maximum number of steps before the run is stopped. zero means
	// DefaultSteps and a negative value means no limit
	Steps int

	// print one line per step
	Trace bool

	// whether diagnostics are logged. a nil value means the value is taken
	// from the environment
	Diagnostics *bool

	// send diagnostics to logrus rather than the central logger
	Logrus bool

	// lua script to run alongside the core
	Script string

	// breakpoint definitions. for example "PC=0x0100" or "PC=$0100 & HL=0"
	Breakpoints []string

	// register names to trap
	Traps []string

	// destination for trace, summary and logrus output. a nil value means
	// os.Stdout
	Output io.Writer
}
