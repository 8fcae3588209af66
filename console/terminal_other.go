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

//go:build !unix

package console

import (
	"os"

	"github.com/jetsetilly/drift/curated"
)

// NotTerminal is returned by NewTerminal() when the file is not a terminal.
const NotTerminal = "console: not a terminal (%s)"

// Terminal is not supported on this platform. Keys are still read by the
// console but only after the return key is pressed.
type Terminal struct{}

// NewTerminal always fails on this platform.
func NewTerminal(f *os.File) (*Terminal, error) {
	return nil, curated.Errorf(NotTerminal, f.Name())
}

// Restore does nothing on this platform.
func (t *Terminal) Restore() error {
	return nil
}
