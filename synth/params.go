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

package synth

import (
	"fmt"
	"math"
	"slices"

	"github.com/jetsetilly/drift/synth/preferences"
)

// Percussion parameters for one percussion voice.
type Percussion struct {
	Enabled bool
	Level   float64

	// trigger intervals in seconds
	Intervals []float64
}

// Params are the values that can be changed while the synth is running. A
// Params value is published to the synth with SetParams() and is picked up
// at the start of the next block.
type Params struct {
	// overall level of the oscillator bank. divided equally between voices
	Amplitude float64

	// scale blocks with a peak above 1.0 rather than clipping them
	Normalise bool

	// output silence. the synth continues to run
	Mute bool

	Kick Percussion
	Hat  Percussion
}

func (p Params) String() string {
	return fmt.Sprintf("amp=%.3f norm=%v mute=%v kick=%v/%.2f hat=%v/%.2f",
		p.Amplitude, p.Normalise, p.Mute,
		p.Kick.Enabled, p.Kick.Level, p.Hat.Enabled, p.Hat.Level)
}

// ParamsFromPrefs creates a Params value from the current preferences.
func ParamsFromPrefs(prefs *preferences.Preferences) Params {
	kick, hat := prefs.Intervals()
	return Params{
		Amplitude: prefs.Amplitude.Float(),
		Normalise: prefs.Normalise.Bool(),
		Mute:      prefs.Mute.Bool(),
		Kick: Percussion{
			Enabled:   prefs.KickEnabled.Bool(),
			Level:     prefs.KickLevel.Float(),
			Intervals: kick,
		},
		Hat: Percussion{
			Enabled:   prefs.HatEnabled.Bool(),
			Level:     prefs.HatLevel.Float(),
			Intervals: hat,
		},
	}
}

// unit limits a level to the range [0, 1]. non-finite values become zero
func unit(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// sanitise returns a copy of the parameters that is safe for the audio
// goroutine to use. interval slices are copied so that the caller is free to
// reuse them
func (p Params) sanitise() Params {
	p.Amplitude = unit(p.Amplitude)
	p.Kick.Level = unit(p.Kick.Level)
	p.Hat.Level = unit(p.Hat.Level)
	p.Kick.Intervals = sanitiseIntervals(p.Kick.Intervals)
	p.Hat.Intervals = sanitiseIntervals(p.Hat.Intervals)
	return p
}

func sanitiseIntervals(iv []float64) []float64 {
	iv = slices.DeleteFunc(slices.Clone(iv), func(v float64) bool {
		return v <= 0 || math.IsNaN(v) || math.IsInf(v, 0)
	})
	if len(iv) == 0 {
		return nil
	}
	return iv
}
