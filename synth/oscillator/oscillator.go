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

package oscillator

import (
	"fmt"
	"math"

	"github.com/jetsetilly/drift/synth/modulation"
)

const twoPi = 2 * math.Pi

// Voice is a single sine oscillator. The phase of the oscillator is carried
// from one block to the next so that the output is continuous across block
// boundaries.
type Voice struct {
	// the frequency of the voice when there is no glide
	Base float64

	// phase at the start of the next block. always in the range [0, 2π)
	Phase float64

	FreqLFO modulation.LFO
	Tremolo modulation.Tremolo

	// if Glide is not nil the frequency of the voice is taken from the glide
	// and Base is ignored
	Glide *modulation.Glide

	// instantaneous frequency of the last sample of the most recent block
	freq float64
}

// NewVoice creates a voice with a fixed base frequency and no modulation.
func NewVoice(base float64) *Voice {
	return &Voice{
		Base: base,
		freq: base,
	}
}

func (v *Voice) String() string {
	if v.Glide != nil {
		return fmt.Sprintf("%.2fHz glide %s lfo %s", v.freq, v.Glide, v.FreqLFO)
	}
	return fmt.Sprintf("%.2fHz lfo %s", v.freq, v.FreqLFO)
}

// Frequency returns the instantaneous frequency of the last sample that was
// rendered. Before the first block it is the unmodulated frequency.
func (v *Voice) Frequency() float64 {
	return v.freq
}

// current frequency of the voice before frequency modulation
func (v *Voice) current() float64 {
	if v.Glide != nil {
		return v.Glide.Current
	}
	return v.Base
}

// render a block of samples into out. the frequency of each sample is
// computed individually and the sample is taken from a phase that is
// extrapolated linearly from the phase at the start of the block
//
//	out[n] = sin(phase + 2π * f[n] * n / sr) * tremolo(t[n])
//
// the phase at the start of the next block is advanced by the frequency of
// the final sample
func (v *Voice) render(out []float64, clock uint64, sampleRate float64, src modulation.Source) {
	frames := len(out)

	if v.Glide != nil {
		v.Glide.Advance(frames, src)
	}

	nyquist := sampleRate / 2
	w := twoPi / sampleRate

	freq := v.freq
	for n := range out {
		t := float64(clock+uint64(n)) / sampleRate

		freq = v.current() + v.FreqLFO.Offset(t)
		if v.Glide != nil {
			freq = v.Glide.Frequency(freq)
		}
		freq = clampFrequency(freq, nyquist)

		out[n] = math.Sin(v.Phase+w*freq*float64(n)) * v.Tremolo.Gain(t)
	}
	v.freq = freq

	v.Phase = wrapPhase(v.Phase + w*freq*float64(frames))
}

// clampFrequency limits frequency to the range [0, nyquist]. a non-finite
// frequency is treated as silence
func clampFrequency(freq float64, nyquist float64) float64 {
	if math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0
	}
	return math.Max(0, math.Min(nyquist, freq))
}

// wrapPhase returns the phase in the range [0, 2π). a non-finite phase can
// only come from a non-finite starting phase and is reset to zero
func wrapPhase(phase float64) float64 {
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return 0
	}
	phase = math.Mod(phase, twoPi)
	if phase < 0 {
		phase += twoPi
	}
	return phase
}
