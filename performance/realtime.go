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

package performance

import (
	"time"
)

// CalcRealTime takes the number of frames rendered at the sample rate and the
// time it took to render them. Returns the duration of the rendered audio and
// the real-time factor.
//
// The factor is zero if the sample rate or the elapsed time is zero.
func CalcRealTime(frames uint64, sampleRate int, elapsed time.Duration) (time.Duration, float64) {
	if sampleRate <= 0 {
		return 0, 0
	}
	audio := time.Duration(float64(frames) / float64(sampleRate) * float64(time.Second))
	if elapsed <= 0 {
		return audio, 0
	}
	return audio, audio.Seconds() / elapsed.Seconds()
}
