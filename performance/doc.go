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

// Package performance measures how quickly the synth can render audio.
//
// Check() renders a fixed duration of audio without an audio device and as
// quickly as possible. The result is reported as a real-time factor: the
// duration of the audio divided by the time taken to render it. A factor of
// less than one means that the synth cannot keep up with an audio device.
//
// CalcRealTime() calculates the real-time factor from a count of frames and
// can be used with any sink.
package performance
