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
	"fmt"
	"strings"

	"github.com/jetsetilly/gophercores/curated"
)

// traps keeps track of all the currently defined trappers.
type traps struct {
	traps []trapper
}

// trapper defines a specific trap.
type trapper struct {
	target    string
	origValue uint32
}

// parse a register name and add a trap for it. the current value of the
// register is taken from regs.
func (tr *traps) parse(target string, regs map[string]uint32) error {
	target = strings.ToUpper(strings.TrimSpace(target))

	v, ok := regs[target]
	if !ok {
		return curated.Errorf(BreakpointError, fmt.Sprintf("unknown register %s", target))
	}

	for _, t := range tr.traps {
		if t.target == target {
			return curated.Errorf(BreakpointError, fmt.Sprintf("trap already exists (%s)", target))
		}
	}

	tr.traps = append(tr.traps, trapper{target: target, origValue: v})
	return nil
}

// reset the original value of every trap. used when the core is reset
// without the trap list changing.
func (tr *traps) reset(regs map[string]uint32) {
	for i := range tr.traps {
		tr.traps[i].origValue = regs[tr.traps[i].target]
	}
}

// check compares the register values with every trap. it lists every trap
// that applies, not just the first one it encounters. an empty string means
// no trap has been triggered.
func (tr *traps) check(regs map[string]uint32) string {
	var s []string
	for i := range tr.traps {
		v := regs[tr.traps[i].target]
		if v != tr.traps[i].origValue {
			s = append(s, fmt.Sprintf("trap on %s %04x->%04x", tr.traps[i].target, tr.traps[i].origValue, v))
			tr.traps[i].origValue = v
		}
	}
	return strings.Join(s, ", ")
}

func (tr *traps) String() string {
	if len(tr.traps) == 0 {
		return "no traps"
	}
	s := make([]string, len(tr.traps))
	for i := range tr.traps {
		s[i] = tr.traps[i].target
	}
	return strings.Join(s, ", ")
}
