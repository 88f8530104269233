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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/debugger/script"
	"github.com/jetsetilly/gophercores/diagnostics"
	"github.com/jetsetilly/gophercores/hardware/cpu"
	"github.com/jetsetilly/gophercores/logger"
	"github.com/sirupsen/logrus"
)

// Error patterns returned by the package.
const (
	LoadError   = "debugger: load: %v"
	ConfigError = "debugger: config: %v"
	RunError    = "debugger: run: %v"
)

// StopReason describes why a run came to an end.
type StopReason int

// List of valid StopReason values.
const (
	StopLimit StopReason = iota
	StopIdle
	StopScript
	StopCancelled
	StopQuit
	StopBreak
	StopTrap
)

func (r StopReason) String() string {
	switch r {
	case StopLimit:
		return "step limit"
	case StopIdle:
		return "idle"
	case StopScript:
		return "script"
	case StopCancelled:
		return "cancelled"
	case StopQuit:
		return "quit"
	case StopBreak:
		return "breakpoint"
	case StopTrap:
		return "trap"
	}
	return "unknown"
}

// Summary of a completed run.
type Summary struct {
	Steps  int
	Cycles uint64
	Reason StopReason

	// the reason given by the script or the breakpoints and traps that
	// stopped the run
	Detail string

	// diagnostic counts as returned by diagnostics.Counter.String()
	Diagnostics string
}

func (s Summary) String() string {
	reason := s.Reason.String()
	if s.Detail != "" {
		reason = fmt.Sprintf("%s: %s", reason, s.Detail)
	}
	return fmt.Sprintf("%d steps, %d cycles, stopped (%s), %s", s.Steps, s.Cycles, reason, s.Diagnostics)
}

// Debugger is the host harness for a CPU core. It owns a flat memory, the
// core attached to it, and the diagnostics gate and sinks for the core.
type Debugger struct {
	cfg Config
	out io.Writer

	mem *bus
	mc  cpu.Interpreter

	gate    *diagnostics.Gate
	counter *diagnostics.Counter

	// nil if no script has been specified
	scr *script.Script

	breakpoints breakpoints
	traps       traps

	// description of the breakpoints or traps that stopped the most recent
	// run
	halt string

	// number of steps taken since the debugger was created
	steps int
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The image file is loaded and the core is reset and ready to run.
func NewDebugger(cfg Config) (*Debugger, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Steps == 0 {
		cfg.Steps = DefaultSteps
	}

	dbg := &Debugger{
		cfg: cfg,
		out: cfg.Output,
		mem: newBus(cfg.Arch),
	}

	var err error

	dbg.mc, err = cpu.NewInterpreter(cfg.Arch, dbg.mem.memory())
	if err != nil {
		return nil, curated.Errorf(ConfigError, err)
	}

	// the flag takes precedence over the environment
	dbg.gate, err = diagnostics.GateFromEnv(DiagnosticsEnv)
	if err != nil {
		logger.Log(logger.Allow, "debugger", err.Error())
	}
	if cfg.Diagnostics != nil {
		dbg.gate.Set(*cfg.Diagnostics)
	}

	var sink diagnostics.Sink
	if cfg.Logrus {
		log := logrus.New()
		log.SetOutput(cfg.Output)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		sink = diagnostics.NewLogrus(log.WithFields(logrus.Fields{
			"arch": cfg.Arch.String(),
		}), dbg.gate)
	} else {
		sink = diagnostics.NewCentral(dbg.gate)
	}
	dbg.counter = diagnostics.NewCounter(sink)
	dbg.mc.SetDiagnostics(dbg.counter)

	if cfg.Filename != "" {
		data, err := os.ReadFile(cfg.Filename)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		if err := dbg.Load(cfg.Origin, data); err != nil {
			return nil, err
		}
	}

	dbg.Reset()

	regs := dbg.mc.Registers()
	for _, b := range cfg.Breakpoints {
		if err := dbg.breakpoints.parse(b, regs); err != nil {
			return nil, err
		}
	}
	for _, t := range cfg.Traps {
		if err := dbg.traps.parse(t, regs); err != nil {
			return nil, err
		}
	}

	if cfg.Script != "" {
		dbg.scr, err = script.Load(cfg.Script, dbg.mc, dbg.mem)
		if err != nil {
			return nil, curated.Errorf(ConfigError, err)
		}
	}

	return dbg, nil
}

// Load copies the data into memory at the origin address. The data must fit
// into the address space of the core without wrapping.
func (dbg *Debugger) Load(origin uint32, data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf(LoadError, "empty image")
	}
	top := uint64(1) << dbg.cfg.Arch.AddressWidth()
	if uint64(origin)+uint64(len(data)) > top {
		return curated.Errorf(LoadError, fmt.Sprintf("image of %d bytes does not fit at %06x", len(data), origin))
	}
	dbg.mem.load(origin, data)
	return nil
}

// Reset the core and set the program counter to the entry point.
func (dbg *Debugger) Reset() {
	dbg.mc.Reset()
	if !dbg.cfg.Reset {
		if dbg.cfg.Entry != nil {
			cpu.Jump(dbg.mc, *dbg.cfg.Entry)
		} else {
			cpu.Jump(dbg.mc, dbg.cfg.Origin)
		}
	}
	dbg.traps.reset(dbg.mc.Registers())
}

// Halts returns a description of the breakpoints and traps.
func (dbg *Debugger) Halts() string {
	return fmt.Sprintf("%s\ntraps: %s", dbg.breakpoints.String(), dbg.traps.String())
}

// CleanUp releases resources held by the debugger.
func (dbg *Debugger) CleanUp() {
	if dbg.scr != nil {
		dbg.scr.Close()
		dbg.scr = nil
	}
}

// Interpreter returns the core being run by the debugger.
func (dbg *Debugger) Interpreter() cpu.Interpreter {
	return dbg.mc
}

// Diagnostics returns the counting sink attached to the core.
func (dbg *Debugger) Diagnostics() *diagnostics.Counter {
	return dbg.counter
}

// Gate returns the gate controlling whether diagnostics are logged.
func (dbg *Debugger) Gate() *diagnostics.Gate {
	return dbg.gate
}

// Peek reads a byte from memory.
func (dbg *Debugger) Peek(address uint32) uint8 {
	return dbg.mem.Peek(address)
}

// Poke writes a byte to memory.
func (dbg *Debugger) Poke(address uint32, data uint8) {
	dbg.mem.Poke(address, data)
}

// Dump returns a hex dump of memory.
func (dbg *Debugger) Dump(from uint32, length int) string {
	return dbg.mem.dump(from, length)
}

// step the core once. the return value is true if the run should stop, with
// the reason.
func (dbg *Debugger) step() (bool, StopReason, error) {
	dbg.mc.Step()
	dbg.steps++

	if dbg.cfg.Trace {
		dbg.trace()
	}

	if dbg.scr != nil {
		stop, err := dbg.scr.Step(dbg.mc.Result())
		if err != nil {
			return true, StopScript, curated.Errorf(RunError, err)
		}
		if stop {
			return true, StopScript, nil
		}
	}

	if len(dbg.breakpoints.breaks) > 0 || len(dbg.traps.traps) > 0 {
		// both lists are checked so that the trap values are current even
		// when a breakpoint matches
		regs := dbg.mc.Registers()
		b := dbg.breakpoints.check(regs)
		t := dbg.traps.check(regs)
		if b != "" {
			dbg.halt = b
			return true, StopBreak, nil
		}
		if t != "" {
			dbg.halt = t
			return true, StopTrap, nil
		}
	}

	if cpu.Idle(dbg.mc) {
		return true, StopIdle, nil
	}

	return false, StopLimit, nil
}

func (dbg *Debugger) trace() {
	fmt.Fprintf(dbg.out, "%s\n", dbg.mc.Result())
}

// Run steps the core until it is idle, the step limit is reached, the script
// stops the run, or the context is cancelled.
func (dbg *Debugger) Run(ctx context.Context) (Summary, error) {
	reason, err := dbg.run(ctx, dbg.cfg.Steps)
	return dbg.end(reason, err)
}

// run is the body of Run() without the summary. a limit less than zero means
// there is no limit.
func (dbg *Debugger) run(ctx context.Context, limit int) (StopReason, error) {
	for n := 0; limit < 0 || n < limit; n++ {
		select {
		case <-ctx.Done():
			return StopCancelled, nil
		default:
		}

		stop, reason, err := dbg.step()
		if err != nil || stop {
			return reason, err
		}
	}
	return StopLimit, nil
}

func (dbg *Debugger) end(reason StopReason, err error) (Summary, error) {
	s := Summary{
		Steps:       dbg.steps,
		Cycles:      dbg.mc.CycleCount(),
		Reason:      reason,
		Diagnostics: dbg.counter.String(),
	}

	switch reason {
	case StopBreak, StopTrap:
		s.Detail = dbg.halt
	}

	if dbg.scr != nil {
		if reason == StopScript {
			_, s.Detail = dbg.scr.Stopped()
		}
		if endErr := dbg.scr.End(dbg.steps); endErr != nil && err == nil {
			err = curated.Errorf(RunError, endErr)
		}
	}

	return s, err
}
