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

package preferences

import (
	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/prefs"
)

// sentinel error patterns
const (
	UnknownPreset = "preferences: unknown preset (%s)"
	BadIntervals  = "preferences: bad interval list (%s)"
)

// Preferences defines and collates all the preference values used by the
// synth.
//
// Some values are only read when a synth is created: the preset, the number
// of voices, the glide duration and the seed. The remaining values can be
// changed while a synth is running. See SetChangeHook().
type Preferences struct {
	group *prefs.Group

	// selecting a preset copies the preset's values into the other
	// preferences
	Preset *prefs.String

	Voices    *prefs.Int
	Amplitude *prefs.Float
	Glide     *prefs.Float
	Normalise *prefs.Bool
	Mute      *prefs.Bool

	// zero means that the seed will be taken from the current time
	Seed *prefs.Int

	KickEnabled   *prefs.Bool
	KickLevel     *prefs.Float
	KickIntervals *prefs.String

	HatEnabled   *prefs.Bool
	HatLevel     *prefs.Float
	HatIntervals *prefs.String
}

func (p *Preferences) String() string {
	return p.group.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	def, _ := LookupPreset(DefaultPreset)

	p := &Preferences{
		group:         prefs.NewGroup(),
		Preset:        prefs.NewString(def.Name),
		Voices:        prefs.NewInt(def.Voices),
		Amplitude:     prefs.NewFloat(def.Amplitude),
		Glide:         prefs.NewFloat(def.GlideDuration),
		Normalise:     prefs.NewBool(true),
		Mute:          prefs.NewBool(false),
		Seed:          prefs.NewInt(0),
		KickEnabled:   prefs.NewBool(def.Kick),
		KickLevel:     prefs.NewFloat(0.4),
		KickIntervals: prefs.NewString(DefaultIntervals),
		HatEnabled:    prefs.NewBool(def.Hat),
		HatLevel:      prefs.NewFloat(0.2),
		HatIntervals:  prefs.NewString(DefaultIntervals),
	}

	p.Voices.SetRange(1, 16)
	p.Amplitude.SetRange(0, 1)
	p.Glide.SetRange(0.001, 60)
	p.KickLevel.SetRange(0, 1)
	p.HatLevel.SetRange(0, 1)

	p.Preset.SetHookPre(func(v prefs.Value) error {
		if _, ok := LookupPreset(v.(string)); !ok {
			return curated.Errorf(UnknownPreset, v)
		}
		return nil
	})
	p.Preset.SetHookPost(func(v prefs.Value) error {
		return p.applyPreset(v.(string))
	})

	validIntervals := func(v prefs.Value) error {
		_, err := ParseIntervals(v.(string))
		return err
	}
	p.KickIntervals.SetHookPre(validIntervals)
	p.HatIntervals.SetHookPre(validIntervals)

	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{"synth.preset", p.Preset},
		{"synth.voices", p.Voices},
		{"synth.amplitude", p.Amplitude},
		{"synth.glide", p.Glide},
		{"synth.normalise", p.Normalise},
		{"synth.mute", p.Mute},
		{"synth.seed", p.Seed},
		{"kick.enabled", p.KickEnabled},
		{"kick.level", p.KickLevel},
		{"kick.intervals", p.KickIntervals},
		{"hat.enabled", p.HatEnabled},
		{"hat.level", p.HatLevel},
		{"hat.intervals", p.HatIntervals},
	} {
		if err := p.group.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// applyPreset copies the preset values into the other preferences
func (p *Preferences) applyPreset(name string) error {
	pr, ok := LookupPreset(name)
	if !ok {
		return curated.Errorf(UnknownPreset, name)
	}
	if err := p.Voices.Set(pr.Voices); err != nil {
		return err
	}
	if err := p.Amplitude.Set(pr.Amplitude); err != nil {
		return err
	}
	if pr.Glide {
		if err := p.Glide.Set(pr.GlideDuration); err != nil {
			return err
		}
	}
	if err := p.KickEnabled.Set(pr.Kick); err != nil {
		return err
	}
	return p.HatEnabled.Set(pr.Hat)
}

// CurrentPreset returns the preset named by the Preset preference.
func (p *Preferences) CurrentPreset() Preset {
	pr, ok := LookupPreset(p.Preset.String())
	if !ok {
		pr, _ = LookupPreset(DefaultPreset)
	}
	return pr
}

// Intervals returns the parsed kick and hat interval lists. The values have
// already been validated by the preference hooks.
func (p *Preferences) Intervals() (kick []float64, hat []float64) {
	kick, _ = ParseIntervals(p.KickIntervals.String())
	hat, _ = ParseIntervals(p.HatIntervals.String())
	return kick, hat
}

// Set the preference with the named key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.group.Set(key, v)
}

// Get the value of the preference with the named key.
func (p *Preferences) Get(key string) (prefs.Value, error) {
	return p.group.Get(key)
}

// Keys returns the sorted list of preference keys.
func (p *Preferences) Keys() []string {
	return p.group.Keys()
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.group.Reset(); err != nil {
		return err
	}

	// the preset must be applied again because the preferences reset after the
	// preset will have been reset to the default preset's values
	return p.applyPreset(p.Preset.String())
}

// ApplyCommandLine sets the preferences from the current command line group.
// The preset is applied first so that individual values given on the command
// line override the preset's values.
func (p *Preferences) ApplyCommandLine() error {
	if ok, v := prefs.GetCommandLinePref("synth.preset"); ok {
		if err := p.Preset.Set(v); err != nil {
			return curated.Errorf("prefs: %s: %v", "synth.preset", err)
		}
	}
	return p.group.ApplyCommandLine()
}

// SetChangeHook installs a function that is called whenever a preference that
// can be changed while the synth is running is updated. Only one hook can be
// installed and a later call replaces the earlier hook.
//
// The hook is called from the goroutine that changed the preference.
func (p *Preferences) SetChangeHook(f func()) {
	post := func(_ prefs.Value) error {
		if f != nil {
			f()
		}
		return nil
	}
	p.Amplitude.SetHookPost(post)
	p.Normalise.SetHookPost(post)
	p.Mute.SetHookPost(post)
	p.KickEnabled.SetHookPost(post)
	p.KickLevel.SetHookPost(post)
	p.KickIntervals.SetHookPost(post)
	p.HatEnabled.SetHookPost(post)
	p.HatLevel.SetHookPost(post)
	p.HatIntervals.SetHookPost(post)
}
