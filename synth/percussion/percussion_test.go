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

package percussion_test

import (
	"math"
	"slices"
	"testing"

	"github.com/jetsetilly/drift/random"
	"github.com/jetsetilly/drift/synth/percussion"
	"github.com/jetsetilly/drift/test"
)

const sampleRate = 44100

func TestKick(t *testing.T) {
	l := percussion.KickLength(sampleRate)
	test.ExpectEquality(t, l, 7350)

	a := percussion.GenerateKick(l, sampleRate)
	b := percussion.GenerateKick(l, sampleRate)
	test.DemandEquality(t, len(a), l)

	// the kick is the same every time
	test.ExpectSuccess(t, slices.Equal(a, b))

	for _, s := range a {
		test.ExpectSuccess(t, math.Abs(s) <= 1)
	}

	// the body decays
	var early, late float64
	for _, s := range a[:l/10] {
		early = math.Max(early, math.Abs(s))
	}
	for _, s := range a[l-l/10:] {
		late = math.Max(late, math.Abs(s))
	}
	test.ExpectSuccess(t, late < early)

	// rendering into an existing buffer gives the same result
	c := make([]float64, l)
	percussion.RenderKick(c, sampleRate)
	test.ExpectSuccess(t, slices.Equal(a, c))

	test.ExpectEquality(t, len(percussion.GenerateKick(-1, sampleRate)), 0)
}

func TestHiHat(t *testing.T) {
	l := percussion.HiHatLength(sampleRate)
	test.ExpectEquality(t, l, 3675)

	a := percussion.GenerateHiHat(l, sampleRate, random.NewRandom(100))
	b := percussion.GenerateHiHat(l, sampleRate, random.NewRandom(100))
	c := percussion.GenerateHiHat(l, sampleRate, random.NewRandom(101))
	test.DemandEquality(t, len(a), l)

	// seeded noise is repeatable
	test.ExpectSuccess(t, slices.Equal(a, b))
	test.ExpectFailure(t, slices.Equal(a, c))

	for _, s := range a {
		test.ExpectSuccess(t, math.Abs(s) <= 1)
	}

	// by the end of the one-shot the envelope is almost silent
	for _, s := range a[l-l/10:] {
		test.ExpectSuccess(t, math.Abs(s) < 0.03)
	}
}

func TestTriggerTimes(t *testing.T) {
	const block = 1024

	rnd := random.NewRandom(1)
	v := percussion.NewVoice(percussion.Kick{}, sampleRate, []float64{0.5})

	var triggers []uint64
	var clock uint64
	for clock < sampleRate*1.6 {
		if v.Step(clock, rnd) {
			triggers = append(triggers, clock)
		}
		clock += block
	}

	test.DemandEquality(t, len(triggers), 4)
	for i, tr := range triggers {
		expected := uint64(i) * sampleRate / 2
		test.ExpectSuccess(t, tr >= expected && tr < expected+block, i, tr)
	}
	test.ExpectEquality(t, v.Triggers(), uint64(4))
}

func TestRandomIntervals(t *testing.T) {
	const block = 512

	rnd := random.NewRandom(2)
	v := percussion.NewVoice(percussion.HiHat{}, sampleRate, nil)

	allowed := []uint64{sampleRate / 4, sampleRate / 2, sampleRate}

	var clock uint64
	var scheduled uint64
	for clock < sampleRate*30 {
		if v.Step(clock, rnd) {
			next := v.Next()
			test.ExpectSuccess(t, slices.Contains(allowed, next-scheduled), next-scheduled)
			scheduled = next
		}
		clock += block
	}
	test.ExpectSuccess(t, v.Triggers() > 30)
}

func TestStateMachine(t *testing.T) {
	const block = 1024

	rnd := random.NewRandom(3)
	v := percussion.NewVoice(percussion.Kick{}, sampleRate, []float64{1.0})
	test.ExpectEquality(t, v.State(), percussion.Idle)

	// mixing an idle voice does nothing
	out := make([]float64, block)
	v.Mix(out, 1.0)
	test.ExpectEquality(t, v.Cursor(), 0)

	test.ExpectSuccess(t, v.Step(0, rnd))
	test.ExpectEquality(t, v.State(), percussion.Playing)
	test.ExpectEquality(t, v.Cursor(), 0)

	// the first block is the start of the one-shot scaled by the level
	v.Mix(out, 0.5)
	for i := range out {
		test.ExpectEquality(t, out[i], v.Buffer()[i]*0.5)
	}
	test.ExpectEquality(t, v.Cursor(), block)

	// 7350 samples need eight blocks of 1024
	for range 6 {
		v.Mix(out, 0.5)
	}
	test.ExpectEquality(t, v.State(), percussion.Playing)
	clear(out)
	v.Mix(out, 0.5)
	test.ExpectEquality(t, v.State(), percussion.Idle)
	test.ExpectEquality(t, v.Cursor(), 8*block)

	// only the tail of the one-shot was mixed
	tail := 7350 - 7*block
	test.ExpectInequality(t, out[tail-1], 0.0)
	test.ExpectEquality(t, out[tail], 0.0)

	// no trigger until the interval has elapsed
	test.ExpectFailure(t, v.Step(8*block, rnd))
	test.ExpectEquality(t, v.Truncations(), uint64(0))
}

func TestTruncation(t *testing.T) {
	const block = 256

	rnd := random.NewRandom(4)

	// a tenth of a second is shorter than the kick but longer than the hat
	kick := percussion.NewVoice(percussion.Kick{}, sampleRate, []float64{0.1})
	hat := percussion.NewVoice(percussion.HiHat{}, sampleRate, []float64{0.1})

	out := make([]float64, block)
	var clock uint64
	for clock < sampleRate {
		kick.Step(clock, rnd)
		hat.Step(clock, rnd)
		kick.Mix(out, 1)
		hat.Mix(out, 1)
		clock += block
	}

	test.ExpectSuccess(t, kick.Truncations() > 0)
	test.ExpectEquality(t, hat.Truncations(), uint64(0))
}

func TestDisabled(t *testing.T) {
	const block = 1024

	rnd := random.NewRandom(5)
	v := percussion.NewVoice(percussion.HiHat{}, sampleRate, []float64{1.0})

	test.ExpectSuccess(t, v.Step(0, rnd))
	v.Advance(block)
	test.ExpectEquality(t, v.Cursor(), block)
	test.ExpectEquality(t, v.State(), percussion.Playing)
	for range 3 {
		v.Advance(block)
	}
	test.ExpectEquality(t, v.State(), percussion.Idle)
}

func TestBadIntervals(t *testing.T) {
	rnd := random.NewRandom(6)
	v := percussion.NewVoice(percussion.Kick{}, sampleRate, []float64{-1, math.NaN()})

	// bad intervals fall back to a safe value
	test.ExpectSuccess(t, v.Step(0, rnd))
	test.ExpectEquality(t, v.Next(), uint64(sampleRate/2))
}
