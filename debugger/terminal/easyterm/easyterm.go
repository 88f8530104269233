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
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/gophercores/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TermGeometry contains the dimensions of the output terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	// whether input is a terminal. the termios functions are not called if it
	// is not
	interactive bool

	Geometry TermGeometry

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// protects Geometry, which is updated by the signal handler
	mu sync.Mutex
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf("easyterm: terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile
	pt.interactive = term.IsTerminal(int(pt.input.Fd()))

	if pt.interactive {
		// prepare the attributes for the different terminal modes we'll be
		// using
		if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
			return curated.Errorf("easyterm: %v", err)
		}
		pt.cbreakAttr = pt.canAttr
		termios.Cfmakecbreak(&pt.cbreakAttr)
	}

	_ = pt.UpdateGeometry()

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode.
func (pt *Terminal) CleanUp() {
	_ = pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// Interactive returns true if the input file is a terminal.
func (pt *Terminal) Interactive() bool {
	return pt.interactive
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	cols, rows, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return curated.Errorf("easyterm: geometry: %v", err)
	}
	pt.Geometry.Cols = cols
	pt.Geometry.Rows = rows
	return nil
}

// GetGeometry returns a copy of the most recent geometry information.
func (pt *Terminal) GetGeometry() TermGeometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.Geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	if !pt.interactive {
		return nil
	}
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Key presses are available to
// ReadKey() immediately and are not echoed.
func (pt *Terminal) CBreakMode() error {
	if !pt.interactive {
		return nil
	}
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Suspend the process from cbreak mode. The terminal is returned to canonical
// mode while the process is suspended and put back into cbreak mode when it
// resumes. Does nothing if the input is not a terminal.
func (pt *Terminal) Suspend() error {
	if !pt.interactive {
		return nil
	}
	if err := pt.CanonicalMode(); err != nil {
		return err
	}
	if err := SuspendProcess(); err != nil {
		return err
	}
	return pt.CBreakMode()
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if !pt.interactive {
		return nil
	}
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}

// ReadKey waits for a single byte from the input file.
func (pt *Terminal) ReadKey() (byte, error) {
	var b [1]byte
	n, err := pt.input.Read(b[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, curated.Errorf("easyterm: no input")
	}
	return b[0], nil
}
