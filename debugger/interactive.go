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

	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/debugger/terminal/easyterm"
	"github.com/jetsetilly/gophercores/logger"
)

// Terminal is the interface to the terminal used by Interactive(). It is
// satisfied by easyterm.Terminal.
type Terminal interface {
	CBreakMode() error
	CanonicalMode() error
	ReadKey() (byte, error)
	Suspend() error
}

// Interactive steps the core one instruction for every key press. The
// register line is printed after every step, followed by any entries added to
// the central log since they were last written.
//
//	space or s    step
//	r             run until the run would normally stop
//	q or escape   quit
//	ctrl-z        suspend the process
//
// The step limit in the Config applies to the total number of steps.
//
// Keys are read by a goroutine that outlives the call until ReadKey() returns.
// A Terminal that blocks in ReadKey() should be given one more key, or have its
// input closed, after Interactive() returns.
func (dbg *Debugger) Interactive(ctx context.Context, term Terminal) (Summary, error) {
	if err := term.CBreakMode(); err != nil {
		return Summary{}, curated.Errorf(RunError, err)
	}
	defer term.CanonicalMode()

	done := make(chan struct{})
	defer close(done)

	// keys are read in a separate goroutine so that cancelling the context
	// ends the session without waiting for another key press
	keys := make(chan byte)
	go func() {
		defer close(keys)
		for {
			k, err := term.ReadKey()
			if err != nil {
				return
			}
			select {
			case keys <- k:
			case <-done:
				return
			}
		}
	}()

	fmt.Fprintf(dbg.out, "%s\n", dbg.mc)
	logger.WriteRecent(dbg.out)

	for {
		select {
		case <-ctx.Done():
			return dbg.end(StopCancelled, nil)

		case k, ok := <-keys:
			if !ok {
				return dbg.end(StopQuit, nil)
			}

			switch k {
			case easyterm.KeySpace, 's', 'S':
				if dbg.cfg.Steps >= 0 && dbg.steps >= dbg.cfg.Steps {
					return dbg.end(StopLimit, nil)
				}

				stop, reason, err := dbg.step()
				if !dbg.cfg.Trace {
					dbg.trace()
				}
				fmt.Fprintf(dbg.out, "%s\n", dbg.mc)
				logger.WriteRecent(dbg.out)
				if err != nil || stop {
					return dbg.end(reason, err)
				}

			case 'r', 'R':
				limit := -1
				if dbg.cfg.Steps >= 0 {
					limit = max(dbg.cfg.Steps-dbg.steps, 0)
				}
				reason, err := dbg.run(ctx, limit)
				fmt.Fprintf(dbg.out, "%s\n", dbg.mc)
				logger.WriteRecent(dbg.out)
				return dbg.end(reason, err)

			case easyterm.KeySuspend:
				if err := term.Suspend(); err != nil {
					return dbg.end(StopQuit, curated.Errorf(RunError, err))
				}
				fmt.Fprintf(dbg.out, "%s\n", dbg.mc)

			case 'q', 'Q', easyterm.KeyEsc:
				return dbg.end(StopQuit, nil)
			}
		}
	}
}
