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

package logger_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gophercores/logger"
	"github.com/jetsetilly/gophercores/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "z80", "unknown opcode")
	log.Log(logger.Allow, "z80", "unknown opcode")
	log.Log(logger.Allow, "z80", "unknown\nopcode")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "z80: unknown opcode (repeat x2)\nz80: unknownopcode\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(3)
	for i := 0; i < 5; i++ {
		log.Logf(logger.Allow, "tag", "%d", i)
	}

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 2\ntag: 3\ntag: 4\n")

	// entries that were trimmed before they were seen by WriteRecent() are
	// lost
	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: 2\ntag: 3\ntag: 4\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: 1\n")

	w.Reset()
	log.Log(logger.Allow, "b", "2")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: 2\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}
	log.SetEcho(w, false)
	log.Log(logger.Allow, "echo", "on")
	log.SetEcho(nil, false)
	log.Log(logger.Allow, "echo", "off")
	test.ExpectEquality(t, w.String(), "echo: on\n")
}

type prohibit struct {
	allow bool
}

func (p prohibit) AllowLogging() bool {
	return p.allow
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(prohibit{allow: false}, "denied", "should not appear")
	log.Logf(prohibit{allow: true}, "allowed", "%s", "should appear")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "allowed: should appear\n")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)
	n, err := fmt.Fprint(c, "tag: detail\nplain\n")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("tag: detail\nplain\n"))
	test.ExpectEquality(t, w.String(), "\033[36mtag\033[0m: detail\nplain\n")
}
