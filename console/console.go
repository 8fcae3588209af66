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

package console

import (
	"context"
	"fmt"
	"io"

	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/logger"
	"github.com/jetsetilly/drift/prefs"
	"github.com/jetsetilly/drift/synth/preferences"
)

// AmplitudeStep is the change in amplitude for each press of the + or - key.
const AmplitudeStep = 0.05

// Quit is returned by Run() when the quit key has been pressed.
const Quit = "console: quit"

const help = `+/-  amplitude    k  kick    h  hi-hat
n    normalise    m  mute    s  status
?    help         q  quit
`

// Console reads key presses and applies them to the preferences.
type Console struct {
	in     io.Reader
	out    io.Writer
	prefs  *preferences.Preferences
	status func() string
}

// NewConsole is the preferred method of initialisation for the Console type.
// The status function is called when the status key is pressed and can be
// nil.
func NewConsole(in io.Reader, out io.Writer, prefs *preferences.Preferences, status func() string) *Console {
	return &Console{
		in:     in,
		out:    out,
		prefs:  prefs,
		status: status,
	}
}

// Run reads keys until the context is cancelled, the quit key is pressed or
// the input is exhausted. Pressing the quit key returns an error matching the
// Quit pattern.
//
// Reading from the input cannot be interrupted so a goroutine blocked on a
// read will remain until the next key press or the end of the program.
func (c *Console) Run(ctx context.Context) error {
	keys := make(chan byte)
	errs := make(chan error, 1)

	go func() {
		b := make([]byte, 1)
		for {
			n, err := c.in.Read(b)
			if n > 0 {
				select {
				case keys <- b[0]:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				errs <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("console: %v", err)
		case k := <-keys:
			quit, err := c.HandleKey(k)
			if err != nil {
				logger.Log(logger.Allow, "console", err)
			}
			if quit {
				return curated.Errorf(Quit)
			}
		}
	}
}

// HandleKey applies a single key press. Returns true if the key was the quit
// key. Unrecognised keys are ignored.
func (c *Console) HandleKey(key byte) (bool, error) {
	switch key {
	case '+', '=':
		return false, c.nudge(c.prefs.Amplitude, AmplitudeStep)
	case '-', '_':
		return false, c.nudge(c.prefs.Amplitude, -AmplitudeStep)
	case 'k', 'K':
		return false, c.toggle("kick", c.prefs.KickEnabled)
	case 'h', 'H':
		return false, c.toggle("hi-hat", c.prefs.HatEnabled)
	case 'n', 'N':
		return false, c.toggle("normalise", c.prefs.Normalise)
	case 'm', 'M':
		return false, c.toggle("mute", c.prefs.Mute)
	case 's', 'S':
		if c.status != nil {
			c.printf("%s\n", c.status())
		}
	case '?':
		c.printf("%s", help)
	case 'q', 'Q':
		return true, nil
	}
	return false, nil
}

func (c *Console) nudge(p *prefs.Float, step float64) error {
	if err := p.Set(p.Float() + step); err != nil {
		return err
	}
	c.printf("amplitude: %s\n", p)
	return nil
}

func (c *Console) toggle(label string, p *prefs.Bool) error {
	if err := p.Set(!p.Bool()); err != nil {
		return err
	}
	if p.Bool() {
		c.printf("%s: on\n", label)
	} else {
		c.printf("%s: off\n", label)
	}
	return nil
}

// terminals in cbreak mode still translate newlines so a plain newline is
// fine here
func (c *Console) printf(format string, a ...any) {
	if c.out == nil {
		return
	}
	fmt.Fprintf(c.out, format, a...)
}
