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

package random

import (
	"math/rand/v2"
	"time"
)

// Random is a seedable random number generator. It is not safe for use from
// more than one goroutine.
type Random struct {
	seed uint64
	rnd  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means that the seed will be taken from the current time.
func NewRandom(seed int64) *Random {
	rnd := &Random{}
	rnd.Reseed(seed)
	return rnd
}

// Reseed restarts the sequence of random numbers. A seed of zero means that
// the seed will be taken from the current time.
func (rnd *Random) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd.seed = uint64(seed)

	// the second PCG word is fixed so that the seed is the only input
	rnd.rnd = rand.New(rand.NewPCG(rnd.seed, 0x9e3779b97f4a7c15))
}

// Seed returns the seed value that was used to initialise the sequence. If the
// generator was created with a zero seed then this will be the time based
// value that was chosen.
func (rnd *Random) Seed() int64 {
	return int64(rnd.seed)
}

// Float64 returns a number in the half-open interval [0.0, 1.0)
func (rnd *Random) Float64() float64 {
	return rnd.rnd.Float64()
}

// IntN returns a number in the half-open interval [0, n). Returns zero if n
// is less than or equal to zero.
func (rnd *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rnd.rnd.IntN(n)
}

// Uniform returns a number in the interval [min, max). If min is greater than
// max then the values are swapped.
func (rnd *Random) Uniform(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return min + rnd.rnd.Float64()*(max-min)
}

// Noise returns a number in the interval [-1.0, 1.0)
func (rnd *Random) Noise() float64 {
	return rnd.rnd.Float64()*2 - 1
}
