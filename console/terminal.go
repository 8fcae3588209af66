// This file is part of Drift.
//
// Drift is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Drift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Drift.  If not, see <https://www.gnu.org/licenses/>.

//go:build unix

package console

import (
	"os"

	"github.com/jetsetilly/drift/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// NotTerminal is returned by NewTerminal() when the file is not a terminal.
const NotTerminal = "console: not a terminal (%s)"

// Terminal puts a terminal into cbreak mode. Keys are available to be read as
// soon as they are pressed and are not echoed. Signal keys, such as ctrl-c,
// are still handled by the terminal.
type Terminal struct {
	f     *os.File
	saved unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal is in cbreak mode on return and must be restored with
// Restore().
func NewTerminal(f *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(f.Fd())) {
		return nil, curated.Errorf(NotTerminal, f.Name())
	}

	t := &Terminal{f: f}
	if err := termios.Tcgetattr(f.Fd(), &t.saved); err != nil {
		return nil, curated.Errorf("console: %v", err)
	}

	cbreak := t.saved
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(f.Fd(), termios.TCIFLUSH, &cbreak); err != nil {
		return nil, curated.Errorf("console: %v", err)
	}

	return t, nil
}

// Restore the terminal to the mode it was in before NewTerminal() was
// called.
func (t *Terminal) Restore() error {
	if err := termios.Tcsetattr(t.f.Fd(), termios.TCIFLUSH, &t.saved); err != nil {
		return curated.Errorf("console: %v", err)
	}
	return nil
}
