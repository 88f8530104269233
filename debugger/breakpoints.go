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

// breakpoints are used to halt execution when a register is *changed to* a
// specific value. compare to traps which are used to halt execution when the
// register *changes from* its current value *to* any other value.

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/modalflag"
)

// BreakpointError is the error pattern for a breakpoint or trap that cannot
// be parsed.
const BreakpointError = "debugger: breakpoint: %v"

// breakpoints keeps track of all the currently defined breakers.
type breakpoints struct {
	// array of breakers are ORed together
	breaks []breaker
}

// breaker defines a specific break condition.
type breaker struct {
	target string
	value  uint32

	// the breaker will not match again until the target has changed to some
	// other value
	ignoring    bool
	ignoreValue uint32

	// single linked list ANDs breakers together
	next *breaker
}

func (bk breaker) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s->%04x", bk.target, bk.value))
	n := bk.next
	for n != nil {
		s.WriteString(fmt.Sprintf(" & %s->%04x", n.target, n.value))
		n = n.next
	}
	return s.String()
}

// compares two breakers for equality. returns true if the two breakers are
// logically the same.
func (bk breaker) cmp(ck breaker) bool {
	// count number of nodes
	bn := 0
	b := &bk
	for b != nil {
		bn++
		b = b.next
	}

	cn := 0
	c := &ck
	for c != nil {
		cn++
		c = c.next
	}

	if cn != bn {
		return false
	}

	// compare all nodes with one another
	b = &bk
	for b != nil {
		c = &ck
		match := false
		for c != nil {
			match = b.target == c.target && b.value == c.value
			if match {
				break // for loop
			}
			c = c.next
		}

		if !match {
			return false
		}

		b = b.next
	}

	return true
}

// check the break condition against the current register values.
func (bk *breaker) check(regs map[string]uint32) bool {
	currVal := regs[bk.target]
	if currVal != bk.value {
		bk.ignoring = false
		return false
	}

	if bk.ignoring && currVal == bk.ignoreValue {
		return false
	}

	if bk.next != nil {
		if !bk.next.check(regs) {
			return false
		}
	}

	bk.ignoring = true
	bk.ignoreValue = currVal

	return true
}

// add a new breaker by linking it to the end of an existing breaker.
func (bk *breaker) add(nbk *breaker) {
	n := bk
	for n.next != nil {
		n = n.next
	}
	n.next = nbk
}

// check compares the register values with every breakpoint condition.
// returns a string listing every condition that matches, separated by a
// comma. an empty string means there was no match.
func (bp *breakpoints) check(regs map[string]uint32) string {
	var s []string
	for i := range bp.breaks {
		if bp.breaks[i].check(regs) {
			s = append(s, fmt.Sprintf("break on %s", bp.breaks[i]))
		}
	}
	return strings.Join(s, ", ")
}

// parse a breakpoint definition and add it to the list. the register names
// in regs are the valid targets. for example:
//
//	PC=0x0100
//	0x0100
//	PC=$0100 & HL=0
//
// a value without a target is a breakpoint on the PC. conditions joined with
// & must all match for the breakpoint to trigger.
func (bp *breakpoints) parse(definition string, regs map[string]uint32) error {
	var head *breaker

	for _, cond := range strings.Split(definition, "&") {
		cond = strings.TrimSpace(cond)
		if cond == "" {
			return curated.Errorf(BreakpointError, fmt.Sprintf("empty condition in %q", definition))
		}

		target := "PC"
		value := cond
		if t, v, ok := strings.Cut(cond, "="); ok {
			target = strings.ToUpper(strings.TrimSpace(t))
			value = strings.TrimSpace(v)
		}

		if _, ok := regs[target]; !ok {
			return curated.Errorf(BreakpointError, fmt.Sprintf("unknown register %s", target))
		}

		v, err := modalflag.ParseAddress(value)
		if err != nil {
			return curated.Errorf(BreakpointError, err)
		}

		nbk := &breaker{target: target, value: v}
		if head == nil {
			head = nbk
		} else {
			head.add(nbk)
		}
	}

	for _, bk := range bp.breaks {
		if bk.cmp(*head) {
			return curated.Errorf(BreakpointError, fmt.Sprintf("already exists (%s)", bk))
		}
	}

	bp.breaks = append(bp.breaks, *head)
	return nil
}

func (bp *breakpoints) String() string {
	if len(bp.breaks) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	s.WriteString("breakpoints:")
	for i := range bp.breaks {
		s.WriteString(fmt.Sprintf("\n% 2d: %s", i, bp.breaks[i]))
	}
	return s.String()
}
