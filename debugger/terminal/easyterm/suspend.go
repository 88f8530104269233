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

package easyterm

import (
	"os"
	"syscall"

	"github.com/jetsetilly/gophercores/curated"
)

// SuspendProcess manually suspends the current process. This is useful if
// terminal is in cbreak mode and the suspend key is read as an ordinary key.
func SuspendProcess() error {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return p.Signal(syscall.SIGTSTP)
}
