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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/prefs"
	"github.com/jetsetilly/drift/synth/preferences"
	"github.com/jetsetilly/drift/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Preset.String(), preferences.DefaultPreset)
	test.ExpectEquality(t, p.Voices.Int(), 4)
	test.ExpectEquality(t, p.KickLevel.Float(), 0.4)
	test.ExpectEquality(t, p.HatLevel.Float(), 0.2)
	test.ExpectSuccess(t, p.KickEnabled.Bool())
	test.ExpectSuccess(t, p.HatEnabled.Bool())
	test.ExpectSuccess(t, p.Normalise.Bool())

	kick, hat := p.Intervals()
	test.ExpectEquality(t, len(kick), 3)
	test.ExpectEquality(t, len(hat), 3)
	test.ExpectEquality(t, kick[1], 0.5)

	test.ExpectEquality(t, len(p.Keys()), 13)
}

func TestPresetSelection(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Set("synth.preset", "drone"))
	test.ExpectEquality(t, p.Voices.Int(), 5)
	test.ExpectEquality(t, p.Amplitude.Float(), 0.3)
	test.ExpectFailure(t, p.KickEnabled.Bool())
	test.ExpectFailure(t, p.HatEnabled.Bool())
	test.ExpectEquality(t, p.CurrentPreset().Name, "drone")

	test.ExpectSuccess(t, p.Set("synth.preset", "melody"))
	test.ExpectEquality(t, p.Voices.Int(), 1)
	test.ExpectEquality(t, p.Glide.Float(), 0.005)

	// unknown presets are rejected and the current preset is unchanged
	err = p.Set("synth.preset", "polka")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, preferences.UnknownPreset))
	test.ExpectEquality(t, p.Preset.String(), "melody")

	test.ExpectSuccess(t, p.SetDefaults())
	test.ExpectEquality(t, p.Preset.String(), preferences.DefaultPreset)
	test.ExpectEquality(t, p.Voices.Int(), 4)
}

func TestRanges(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Set("synth.voices", 100))
	test.ExpectEquality(t, p.Voices.Int(), 16)
	test.ExpectSuccess(t, p.Set("synth.voices", 0))
	test.ExpectEquality(t, p.Voices.Int(), 1)

	test.ExpectSuccess(t, p.Set("kick.level", 1.5))
	test.ExpectEquality(t, p.KickLevel.Float(), 1.0)

	// a zero length glide is clamped to a small positive value
	test.ExpectSuccess(t, p.Set("synth.glide", 0.0))
	test.ExpectSuccess(t, p.Glide.Float() > 0)

	test.ExpectFailure(t, p.Set("synth.amplitude", "loud"))
	test.ExpectFailure(t, p.Set("synth.nonsense", 1))
}

func TestIntervals(t *testing.T) {
	iv, err := preferences.ParseIntervals("0.25, 0.5,1")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(iv), 3)
	test.ExpectEquality(t, iv[0], 0.25)
	test.ExpectEquality(t, iv[2], 1.0)
	test.ExpectEquality(t, preferences.FormatIntervals(iv), "0.25, 0.5, 1")

	_, err = preferences.ParseIntervals("")
	test.ExpectFailure(t, err)
	_, err = preferences.ParseIntervals("0.5, -1")
	test.ExpectFailure(t, err)
	_, err = preferences.ParseIntervals("0.5, x")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, preferences.BadIntervals))

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.Set("hat.intervals", "0"))
	test.ExpectEquality(t, p.HatIntervals.String(), preferences.DefaultIntervals)
	test.ExpectSuccess(t, p.Set("hat.intervals", "0.125"))
	_, hat := p.Intervals()
	test.ExpectEquality(t, len(hat), 1)
}

func TestChangeHook(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	var changes int
	p.SetChangeHook(func() { changes++ })

	test.ExpectSuccess(t, p.Set("kick.level", 0.1))
	test.ExpectSuccess(t, p.Set("synth.mute", true))
	test.ExpectEquality(t, changes, 2)

	// voices are only read when the synth is created
	test.ExpectSuccess(t, p.Set("synth.voices", 2))
	test.ExpectEquality(t, changes, 2)

	// selecting a preset changes the amplitude and the percussion switches
	test.ExpectSuccess(t, p.Set("synth.preset", "drone"))
	test.ExpectEquality(t, changes, 5)
}

func TestCommandLine(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	// the preset is applied before the other values regardless of order
	prefs.PushCommandLineStack("synth.voices::2; synth.preset::drone")
	defer prefs.PopCommandLineStack()

	test.ExpectSuccess(t, p.ApplyCommandLine())
	test.ExpectEquality(t, p.Preset.String(), "drone")
	test.ExpectEquality(t, p.Voices.Int(), 2)
}
