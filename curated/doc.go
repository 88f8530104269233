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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. The first argument is a pattern string, which is
// retained so that an error can later be identified with Is() or Has().
//
// Patterns are normally declared as constants in the package that returns
// them. For example:
//
//	const LoadError = "debugger: load: %v"
//
//	...
//
//	return curated.Errorf(LoadError, err)
//
// and checked with:
//
//	if curated.Is(err, debugger.LoadError) {
//		...
//	}
//
// The Error() function de-duplicates adjacent message parts. A chain such as
// "debugger: debugger: image too large" is rendered as "debugger: image too
// large".
//
// The CPU cores do not use curated errors. Stepping an interpreter cannot
// fail. Curated errors are for the host packages that surround the cores.
package curated
