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

package environment

import (
	"github.com/jetsetilly/drift/random"
	"github.com/jetsetilly/drift/synth/preferences"
)

// Label is used to name the environment
type Label string

// MainSynth is the label used for the synth that is playing to the audio
// device
const MainSynth Label = ""

// Environment is used to provide context for a synth. Particularly useful
// when more than one synth exists, for example when measuring performance
type Environment struct {
	Label Label

	// any randomisation required by the synth should be retreived through
	// this structure
	Random *random.Random

	// the synth preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created. Providing a non-nil value allows the preferences of more than
// one synth to be synchronised.
//
// The random number generator is seeded from the synth.seed preference.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs
	env.Random = random.NewRandom(int64(prefs.Seed.Int()))

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
//
// The random number generator is reseeded with the given seed, which should
// not be zero if the sequence is to be repeatable.
func (env *Environment) Normalise(seed int64) error {
	if err := env.Prefs.SetDefaults(); err != nil {
		return err
	}
	if err := env.Prefs.Seed.Set(seed); err != nil {
		return err
	}
	env.Random.Reseed(seed)
	return nil
}

// IsMainSynth returns true if the environment is intended for the synth that
// is playing to the audio device
func (env *Environment) IsMainSynth() bool {
	return env.Label == MainSynth
}

// AllowLogging implements the logger.Permission interface. Only the main
// synth is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainSynth()
}
