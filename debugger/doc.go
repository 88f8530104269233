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

// Package debugger is the host harness for the CPU cores. It loads a binary
// image into flat memory, attaches a core and runs it.
//
// Initialisation of the debugger is done with the NewDebugger() function.
//
//	dbg, err := debugger.NewDebugger(debugger.Config{
//		Arch:     cpu.Z80,
//		Filename: "program.bin",
//		Origin:   0x0100,
//	})
//
// The Run() function steps the core until it is idle, until the step limit is
// reached, until a script asks for the run to stop or until the context is
// cancelled. A Summary of the run is returned. The Interactive() function
// does the same but waits for a key press before every step.
//
// Diagnostics from the core are counted by a diagnostics.Counter and then
// passed to either the central logger or to logrus. Whether they are logged
// is decided by a diagnostics.Gate which is opened by the -diag flag or by the
// GOPHERCORES_DIAGNOSTICS environment variable. The diagnostic counts are
// part of the summary whether the gate is open or not.
//
// The state of the core at the end of the run can be written as JSON with
// WriteState() or as a Graphviz description with WriteMemviz().
package debugger
