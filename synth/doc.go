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

// Package synth is the top level of the synthesiser. The Engine type
// combines an oscillator bank (see the oscillator package) with a kick drum
// and a hi-hat (see the percussion package) and renders blocks of mono
// float32 samples.
//
// Each block is rendered in the following order:
//
//  1. the most recently published Params are collected
//  2. every voice of the oscillator bank is rendered and summed, each voice
//     being scaled by Amplitude divided by the number of voices
//  3. the percussion voices are stepped and, if enabled, mixed in at their
//     level
//  4. a block containing a NaN or an infinity is replaced with silence
//  5. if Normalise is set and the peak of the block is above 1.0, the block
//     is scaled so that the peak is exactly 1.0
//  6. every sample is clamped to [-1, 1]
//
// Normalisation is per block. A loud block next to a quiet block will have a
// step change in gain at the block boundary. Clamping is applied whether or
// not normalisation is enabled, so the output is always in range.
//
// Time in the synth is the number of frames rendered. It is never taken from
// the wall clock. This means that the output of an Engine is entirely
// determined by the seed of the environment's random number generator, the
// preferences and the sequence of block sizes.
//
// Parameters that can be changed while the synth is running are published
// with SetParams(), which stores a pointer to an immutable Params value. The
// audio goroutine collects the pointer at the start of every block. Changes
// therefore take effect on a block boundary and never part way through a
// block.
package synth
