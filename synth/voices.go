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
	"github.com/jetsetilly/drift/synth/modulation"
	"github.com/jetsetilly/drift/synth/oscillator"
	"github.com/jetsetilly/drift/synth/preferences"
)

// NewVoices creates count voices according to the preset. Every random choice
// is taken from src, so the same source state always produces the same
// voices.
//
// The glide argument is the glide duration in seconds. It is only used if the
// preset uses glide.
func NewVoices(preset preferences.Preset, count int, glide float64, sampleRate int, src modulation.Source) []*oscillator.Voice {
	voices := make([]*oscillator.Voice, 0, max(count, 0))

	for range count {
		var v *oscillator.Voice

		switch {
		case len(preset.Notes) > 0 && preset.Glide:
			g := modulation.NewGlide(sampleRate, preset.Notes, glide, preset.FirstInterval, preset.Interval, src)
			v = oscillator.NewVoice(g.Current)
			v.Glide = g
		case len(preset.Notes) > 0:
			v = oscillator.NewVoice(preset.Notes[src.IntN(len(preset.Notes))])
		default:
			v = oscillator.NewVoice(preset.Base.Draw(src))
		}

		v.FreqLFO = modulation.NewLFO(preset.FreqLFOSpeed, preset.FreqLFODepth, src)
		v.Tremolo = modulation.NewTremolo(preset.TremoloShape, preset.TremoloSpeed, preset.TremoloDepth, src)

		voices = append(voices, v)
	}

	return voices
}
