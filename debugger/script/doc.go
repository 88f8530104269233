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

// Package script runs Lua scripts alongside the harness. A script can watch
// every step taken by a CPU core, read registers, peek and poke memory and
// stop the run when a condition is met.
//
// A script that counts the number of times an address is executed and stops
// after the hundredth:
//
//	count = 0
//	function on_step(address, instruction)
//	    if address == 0x0100 then
//	        count = count + 1
//	        if count == 100 then
//	            stop("loop limit")
//	        end
//	    end
//	end
//
// Scripts are written in Lua 5.1 as implemented by gopher-lua.
package script
