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

package diagnostics

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gophercores/logger"
	"github.com/sirupsen/logrus"
)

type central struct {
	gate *Gate
}

// NewCentral returns a Sink that writes diagnostics to the central logger. The
// core name is used as the log tag.
func NewCentral(gate *Gate) Sink {
	return &central{gate: gate}
}

func (c *central) Diagnose(d Diagnostic) {
	logger.Log(c.gate, d.Core, d.String())
}

type structured struct {
	entry *logrus.Entry
	gate  *Gate
}

// NewLogrus returns a Sink that writes diagnostics to a logrus entry as
// structured fields. If entry is nil then the standard logrus logger is used.
func NewLogrus(entry *logrus.Entry, gate *Gate) Sink {
	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}
	return &structured{entry: entry, gate: gate}
}

func (s *structured) Diagnose(d Diagnostic) {
	if !s.gate.AllowLogging() {
		return
	}

	opcode := make([]string, len(d.Opcode))
	for i, o := range d.Opcode {
		opcode[i] = fmt.Sprintf("%02x", o)
	}

	fields := logrus.Fields{
		"core":    d.Core,
		"kind":    d.Kind.String(),
		"address": fmt.Sprintf("%06x", d.Address),
		"opcode":  strings.Join(opcode, " "),
	}

	switch d.Kind {
	case IllegalState:
		s.entry.WithFields(fields).Errorf("%s", d.Detail)
	default:
		s.entry.WithFields(fields).Warnf("%s", d.Kind)
	}
}

// Counter is a Sink that counts diagnostics by kind. It forwards every
// diagnostic to another sink. Diagnostics are counted whether or not the next
// sink logs them.
type Counter struct {
	crit   sync.Mutex
	next   Sink
	counts map[Kind]int
	last   Diagnostic
}

// NewCounter is the preferred method of initialisation for the Counter type.
// If next is nil then diagnostics are not forwarded.
func NewCounter(next Sink) *Counter {
	if next == nil {
		next = Discard
	}
	return &Counter{
		next:   next,
		counts: make(map[Kind]int),
	}
}

// Diagnose implements the Sink interface.
func (c *Counter) Diagnose(d Diagnostic) {
	c.crit.Lock()
	c.counts[d.Kind]++
	c.last = d
	c.crit.Unlock()
	c.next.Diagnose(d)
}

// Count returns the number of diagnostics of the kind.
func (c *Counter) Count(kind Kind) int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.counts[kind]
}

// Total returns the number of diagnostics of all kinds.
func (c *Counter) Total() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	var n int
	for _, v := range c.counts {
		n += v
	}
	return n
}

// Last returns the most recent diagnostic. The boolean is false if there have
// been no diagnostics.
func (c *Counter) Last() (Diagnostic, bool) {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.last, len(c.counts) > 0
}

// Reset all counts to zero.
func (c *Counter) Reset() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.counts = make(map[Kind]int)
	c.last = Diagnostic{}
}

func (c *Counter) String() string {
	c.crit.Lock()
	defer c.crit.Unlock()

	if len(c.counts) == 0 {
		return "no diagnostics"
	}

	kinds := make([]Kind, 0, len(c.counts))
	for k := range c.counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	s := make([]string, 0, len(kinds))
	for _, k := range kinds {
		s = append(s, fmt.Sprintf("%s: %d", k, c.counts[k]))
	}
	return strings.Join(s, ", ")
}
