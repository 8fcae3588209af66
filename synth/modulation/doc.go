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

// Package modulation contains the slow moving control signals that are
// applied to each oscillator voice.
//
// The LFO and Tremolo types are pure functions of global time. They are
// evaluated with the time of each sample, which is derived from the synth's
// sample counter and never from the wall clock:
//
//	offset(t) = depth * sin(2π * speed * t)
//
// Tremolo has two shapes. The Bipolar shape swings the gain either side of
// unity and the Unipolar shape only ever attenuates:
//
//	Bipolar:  gain(t) = 1 + depth * sin(2π * speed * t)
//	Unipolar: gain(t) = 1 - depth * (1 + sin(2π * speed * t)) / 2
//
// The Glide type is the only stateful modulator. It moves a voice from its
// current frequency to a target frequency over a fixed duration. When the
// retarget interval elapses the target becomes the new current frequency, a
// new target is chosen from a set of notes and the glide starts again. All
// glide timers are counted in samples so that a glide completes on an exact
// sample boundary.
//
// Speeds and depths are chosen once, when a voice is created, from bounded
// uniform ranges. See the Range type.
package modulation
