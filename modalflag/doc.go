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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, and sub-modes, and allows different flags
// for each mode.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Flags are
// added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "VERSION")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a command line argument that puts the program into a different
// mode of operation, in the same way as the go command has build, test, vet
// and so on. The first sub-mode is the default and is selected if the next
// argument does not name a sub-mode. Sub-mode comparisons are case
// insensitive.
//
// Once the mode has been decided NewMode() begins a new set of flags for that
// mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		arch := md.AddString("arch", "z80", "cpu architecture")
//		origin := md.AddAddress("origin", 0x0000, "load address")
//		...
//	}
//
// Non-flag arguments left after parsing are returned by RemainingArgs() and
// GetArg().
//
// In addition to the flag types of the flag package there is an address type,
// which accepts hexadecimal numbers in the forms common to assemblers, and an
// optional boolean type that remembers whether it was set at all.
package modalflag
