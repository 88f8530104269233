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
	"encoding/json"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/hardware/cpu"
	"github.com/jetsetilly/gophercores/hardware/cpu/i8080"
	"github.com/jetsetilly/gophercores/hardware/cpu/w65c816"
	"github.com/jetsetilly/gophercores/hardware/cpu/z80"
)

// State is a snapshot of the core suitable for serialisation.
type State struct {
	Arch      string            `json:"arch"`
	PC        uint32            `json:"pc"`
	Steps     int               `json:"steps"`
	Cycles    uint64            `json:"cycles"`
	Idle      bool              `json:"idle"`
	Registers map[string]uint32 `json:"registers"`

	// the disassembly of the most recent instruction
	Last string `json:"last,omitempty"`
}

// State returns a snapshot of the core.
func (dbg *Debugger) State() State {
	s := State{
		Arch:      dbg.cfg.Arch.String(),
		PC:        dbg.mc.ProgramCounter(),
		Steps:     dbg.steps,
		Cycles:    dbg.mc.CycleCount(),
		Idle:      cpu.Idle(dbg.mc),
		Registers: dbg.mc.Registers(),
	}
	if r := dbg.mc.Result(); r.Defn != nil {
		s.Last = r.Disassemble()
	}
	return s
}

// WriteState writes the snapshot of the core as indented JSON.
func (dbg *Debugger) WriteState(w io.Writer) error {
	b, err := json.MarshalIndent(dbg.State(), "", "  ")
	if err != nil {
		return curated.Errorf("debugger: state: %v", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return curated.Errorf("debugger: state: %v", err)
	}
	return nil
}

// WriteMemviz writes a Graphviz description of the core's data structures.
// Memory is not included.
func (dbg *Debugger) WriteMemviz(w io.Writer) {
	memviz.Map(w, detach(dbg.mc))
}

// detach returns a copy of the core that is not attached to any memory or
// diagnostic sink.
func detach(mc cpu.Interpreter) any {
	switch mc := mc.(type) {
	case *i8080.CPU:
		s := mc.Snapshot()
		s.Plumb(nil)
		s.SetDiagnostics(nil)
		return s
	case *z80.CPU:
		s := mc.Snapshot()
		s.Plumb(nil)
		s.SetDiagnostics(nil)
		return s
	case *w65c816.CPU:
		s := mc.Snapshot()
		s.Plumb(nil)
		s.SetDiagnostics(nil)
		return s
	}
	return mc
}
