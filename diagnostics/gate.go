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
	"os"
	"strconv"
	"sync/atomic"

	"github.com/jetsetilly/gophercores/curated"
)

// Gate controls whether diagnostics are logged. It implements the
// logger.Permission interface and so can be used directly with the logger
// package.
//
// The gate is decided by the host. The CPU cores never read the environment.
type Gate struct {
	enabled atomic.Bool
}

// NewGate is the preferred method of initialisation for the Gate type.
func NewGate(enabled bool) *Gate {
	g := &Gate{}
	g.enabled.Store(enabled)
	return g
}

// GateFromEnv creates a Gate from the value of an environment variable. An
// unset or empty variable creates a closed gate. Any value accepted by
// strconv.ParseBool() is valid. Other values are an error.
func GateFromEnv(name string) (*Gate, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return NewGate(false), nil
	}

	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return NewGate(false), curated.Errorf("diagnostics: %s: %v", name, err)
	}

	return NewGate(enabled), nil
}

// Set opens or closes the gate.
func (g *Gate) Set(enabled bool) {
	g.enabled.Store(enabled)
}

// Enabled returns true if the gate is open.
func (g *Gate) Enabled() bool {
	return g.enabled.Load()
}

// AllowLogging implements the logger.Permission interface. A nil Gate never
// allows logging.
func (g *Gate) AllowLogging() bool {
	if g == nil {
		return false
	}
	return g.enabled.Load()
}
