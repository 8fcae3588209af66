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

package percussion

import "math"

// kick drum synthesis constants. the body is a sine wave sweeping down from
// kickSweep+kickFloor Hz to kickFloor Hz
const (
	kickSweep     = 60.0
	kickSweepRate = 5.0
	kickFloor     = 40.0
	kickDecay     = 8.0

	// the click is a short burst of a high sine at the start of the kick,
	// shaped by a Hann window
	kickClickLength = 0.005
	kickClickFreq   = 2000.0
	kickClickLevel  = 0.3
)

// hi-hat decay rate
const hatDecay = 50.0

// Noise is a source of white noise in the range [-1, 1).
type Noise interface {
	Noise() float64
}

// KickLength returns the length of a kick one-shot in samples. A sixth of a
// second.
func KickLength(sampleRate int) int {
	return sampleRate / 6
}

// HiHatLength returns the length of a hi-hat one-shot in samples. A twelfth
// of a second.
func HiHatLength(sampleRate int) int {
	return sampleRate / 12
}

// GenerateKick returns a new kick one-shot of length samples. The output is
// deterministic and bounded to [-1, 1].
func GenerateKick(length int, sampleRate int) []float64 {
	buf := make([]float64, max(length, 0))
	RenderKick(buf, sampleRate)
	return buf
}

// RenderKick is the same as GenerateKick but writes into an existing buffer.
// The length of the one-shot is the length of the buffer.
func RenderKick(buf []float64, sampleRate int) {
	sr := float64(sampleRate)

	clickLen := int(kickClickLength * sr)

	var phase float64
	for i := range buf {
		t := float64(i) / sr

		// phase is the running sum of the instantaneous frequency
		f := kickSweep*math.Exp(-kickSweepRate*t) + kickFloor
		phase += 2 * math.Pi * f / sr

		body := math.Sin(phase) * math.Exp(-kickDecay*t)

		var click float64
		if i < clickLen && clickLen > 1 {
			w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(clickLen-1)))
			click = kickClickLevel * w * math.Sin(2*math.Pi*kickClickFreq*t)
		}

		buf[i] = (body + click) / (1 + kickClickLevel)
	}
}

// GenerateHiHat returns a new hi-hat one-shot of length samples. The noise is
// taken from the supplied source.
func GenerateHiHat(length int, sampleRate int, noise Noise) []float64 {
	buf := make([]float64, max(length, 0))
	RenderHiHat(buf, sampleRate, noise)
	return buf
}

// RenderHiHat is the same as GenerateHiHat but writes into an existing
// buffer. The length of the one-shot is the length of the buffer.
func RenderHiHat(buf []float64, sampleRate int, noise Noise) {
	sr := float64(sampleRate)
	for i := range buf {
		t := float64(i) / sr
		buf[i] = noise.Noise() * math.Exp(-hatDecay*t)
	}
}
