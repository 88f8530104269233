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

// Package diagnostics is how the CPU cores report unusual events, such as the
// execution of an unknown opcode. A core never fails because of an unknown
// opcode. It executes it with a fixed cost and reports it to its Sink.
//
// Whether a report is logged is decided by a Gate. The gate is created by the
// host from a boolean or from an environment variable:
//
//	gate, err := diagnostics.GateFromEnv("GOPHERCORES_DIAGNOSTICS")
//	cpu.SetDiagnostics(diagnostics.NewCentral(gate))
//
// The NewCentral() sink writes to the central logger in the logger package.
// The NewLogrus() sink writes structured entries with the logrus package. The
// Counter sink counts diagnostics by kind and forwards them to another sink.
package diagnostics
