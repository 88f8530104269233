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

// Package logger is the central log for the application. Entries are made
// up of a tag and a detail string and are added with the Log() and Logf()
// functions.
//
// Each call takes a Permission. The permission decides whether the entry is
// made at all, which means the caller is free to leave logging calls in hot
// paths and control them from outside. The Allow permission always permits
// logging.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The central log holds at most 256 entries.
//
// The CPU cores never use this package directly. They report through the
// diagnostics package, one implementation of which writes to the central
// log.
package logger
