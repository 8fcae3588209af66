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

package random_test

import (
	"testing"

	"github.com/jetsetilly/drift/random"
	"github.com/jetsetilly/drift/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom(1234)
	b := random.NewRandom(1234)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.IntN(i), b.IntN(i))
		test.ExpectEquality(t, a.Float64(), b.Float64())
	}

	// reseeding restarts the sequence
	a.Reseed(1234)
	c := random.NewRandom(1234)
	test.ExpectEquality(t, a.Float64(), c.Float64())
}

func TestTimeSeed(t *testing.T) {
	a := random.NewRandom(0)
	test.ExpectInequality(t, a.Seed(), 0)

	// the chosen seed can be used to reproduce the sequence
	b := random.NewRandom(a.Seed())
	test.ExpectEquality(t, a.Float64(), b.Float64())
}

func TestRanges(t *testing.T) {
	a := random.NewRandom(99)

	for range 1000 {
		v := a.Uniform(2.0, 7.0)
		test.ExpectSuccess(t, v >= 2.0 && v < 7.0)

		// swapped range
		v = a.Uniform(7.0, 2.0)
		test.ExpectSuccess(t, v >= 2.0 && v < 7.0)

		n := a.Noise()
		test.ExpectSuccess(t, n >= -1.0 && n < 1.0)
	}

	test.ExpectEquality(t, a.IntN(0), 0)
	test.ExpectEquality(t, a.IntN(-5), 0)
}
