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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the synth.
//
// An instance of Random is created for every environment and passed to every
// component that needs random numbers. Nothing in the synth uses the global
// random source of the math/rand package. This means that two synths created
// with the same seed will produce exactly the same sequence of notes, trigger
// intervals and noise, which is useful for testing.
//
// A seed of zero means that the seed will be taken from the current time.
package random
