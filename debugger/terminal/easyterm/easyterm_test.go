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

package easyterm_test

import (
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/jetsetilly/gophercores/debugger/terminal/easyterm"
	"github.com/jetsetilly/gophercores/test"
)

func TestRequiresFiles(t *testing.T) {
	var term easyterm.Terminal
	test.ExpectFailure(t, term.Initialise(nil, os.Stdout))
	test.ExpectFailure(t, term.Initialise(os.Stdin, nil))
}

func TestPipe(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()

	var term easyterm.Terminal
	test.DemandSuccess(t, term.Initialise(r, w))
	defer term.CleanUp()

	// a pipe is not a terminal so mode changes are accepted but do nothing
	test.ExpectFailure(t, term.Interactive())
	test.ExpectSuccess(t, term.CBreakMode())
	test.ExpectSuccess(t, term.Flush())
	test.ExpectSuccess(t, term.Suspend())

	_, err = w.Write([]byte{'s', easyterm.KeySpace})
	test.DemandSuccess(t, err)
	w.Close()

	k, err := term.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, byte('s'))

	k, err = term.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, byte(easyterm.KeySpace))

	_, err = term.ReadKey()
	test.ExpectFailure(t, err)
}

func TestSuspendProcess(t *testing.T) {
	// catching the signal replaces the default action of stopping the process
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTSTP)
	defer signal.Stop(sig)

	test.DemandSuccess(t, easyterm.SuspendProcess())

	select {
	case s := <-sig:
		test.ExpectEquality(t, s, os.Signal(syscall.SIGTSTP))
	case <-time.After(time.Second):
		t.Errorf("SIGTSTP not received")
	}
}
