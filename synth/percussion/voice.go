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

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Source of random numbers used by a percussion voice. Satisfied by the
// random.Random type.
type Source interface {
	Noise
	IntN(n int) int
}

// Instrument generates the one-shot played by a Voice.
type Instrument interface {
	fmt.Stringer

	// Length of the one-shot in samples
	Length(sampleRate int) int

	// Render the one-shot into the buffer
	Render(buf []float64, sampleRate int, src Source)
}

// Kick is the Instrument for a kick drum.
type Kick struct{}

func (Kick) String() string {
	return "kick"
}

// Length implements the Instrument interface.
func (Kick) Length(sampleRate int) int {
	return KickLength(sampleRate)
}

// Render implements the Instrument interface.
func (Kick) Render(buf []float64, sampleRate int, _ Source) {
	RenderKick(buf, sampleRate)
}

// HiHat is the Instrument for a closed hi-hat.
type HiHat struct{}

func (HiHat) String() string {
	return "hat"
}

// Length implements the Instrument interface.
func (HiHat) Length(sampleRate int) int {
	return HiHatLength(sampleRate)
}

// Render implements the Instrument interface.
func (HiHat) Render(buf []float64, sampleRate int, src Source) {
	RenderHiHat(buf, sampleRate, src)
}

// State of a percussion voice.
type State int

// List of valid State values.
const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	}
	return "unknown"
}

// DefaultIntervals is used when a voice is created with no intervals.
var DefaultIntervals = []float64{0.25, 0.5, 1.0}

// fallback used in place of an interval that is not a positive finite number
const fallbackInterval = 0.5

// Voice plays an Instrument at intervals chosen at random from a list of
// intervals.
//
// Triggering is quantised to the start of a block. The time of the next
// trigger is scheduled from the time of the previous scheduled trigger and
// not from the block in which the trigger happened, so the quantisation error
// never accumulates.
//
// With the exception of Triggers() and Truncations(), the functions of Voice
// must only be called from the goroutine that renders audio.
type Voice struct {
	instrument Instrument
	sampleRate int

	buffer []float64
	cursor int
	state  State

	intervals []float64

	// sample number of the next trigger
	next uint64

	triggers    atomic.Uint64
	truncations atomic.Uint64
}

// NewVoice is the preferred method of initialisation for the Voice type. The
// one-shot buffer is allocated once, here.
func NewVoice(instrument Instrument, sampleRate int, intervals []float64) *Voice {
	v := &Voice{
		instrument: instrument,
		sampleRate: sampleRate,
		buffer:     make([]float64, max(instrument.Length(sampleRate), 0)),
	}
	v.SetIntervals(intervals)
	return v
}

func (v *Voice) String() string {
	return fmt.Sprintf("%s: %s", v.instrument, v.state)
}

// SetIntervals changes the list of intervals (in seconds) from which the time
// to the next trigger is chosen. An empty list means DefaultIntervals.
//
// The slice is not copied and must not be modified after the call.
func (v *Voice) SetIntervals(intervals []float64) {
	if len(intervals) == 0 {
		intervals = DefaultIntervals
	}
	v.intervals = intervals
}

// choose the number of samples until the next trigger
func (v *Voice) choose(src Source) uint64 {
	iv := v.intervals[src.IntN(len(v.intervals))]
	if iv <= 0 || math.IsNaN(iv) || math.IsInf(iv, 0) {
		iv = fallbackInterval
	}
	return max(uint64(math.Round(iv*float64(v.sampleRate))), 1)
}

// Step checks whether the voice should be triggered at the start of the block
// beginning at sample number clock. Returns true if the voice was triggered.
//
// Triggering happens whether or not the voice is being mixed into the output.
func (v *Voice) Step(clock uint64, src Source) bool {
	if clock < v.next {
		return false
	}

	v.trigger(src)

	v.next += v.choose(src)

	// the clock has moved on by more than an interval. this only happens
	// with intervals shorter than a block
	if v.next <= clock {
		v.next = clock + v.choose(src)
	}

	return true
}

// trigger generates a new one-shot and starts playing it. A one-shot that is
// still playing is cut short.
func (v *Voice) trigger(src Source) {
	if v.state == Playing {
		v.truncations.Add(1)
	}
	v.instrument.Render(v.buffer, v.sampleRate, src)
	v.cursor = 0
	v.state = Playing
	v.triggers.Add(1)
}

// Mix the next part of the one-shot into out, scaled by level. The cursor is
// advanced by the length of out even if the one-shot finishes part way
// through the block.
func (v *Voice) Mix(out []float64, level float64) {
	if v.state != Playing {
		return
	}

	n := min(len(out), len(v.buffer)-v.cursor)
	if level != 0 {
		for i := range n {
			out[i] += v.buffer[v.cursor+i] * level
		}
	}

	v.Advance(len(out))
}

// Advance the cursor without mixing. Used when the voice is disabled so that
// it stays in time.
func (v *Voice) Advance(frames int) {
	if v.state != Playing {
		return
	}
	v.cursor += frames
	if v.cursor >= len(v.buffer) {
		v.state = Idle
	}
}

// State returns the current state of the voice.
func (v *Voice) State() State {
	return v.state
}

// Cursor returns the position of the next sample to be played.
func (v *Voice) Cursor() int {
	return v.cursor
}

// Buffer returns the one-shot buffer. Its contents are only meaningful after
// the first trigger.
func (v *Voice) Buffer() []float64 {
	return v.buffer
}

// Next returns the sample number at which the voice will next trigger.
func (v *Voice) Next() uint64 {
	return v.next
}

// Triggers returns the number of times the voice has been triggered. Safe to
// call from any goroutine.
func (v *Voice) Triggers() uint64 {
	return v.triggers.Load()
}

// Truncations returns the number of times a one-shot has been cut short by a
// new trigger. Safe to call from any goroutine.
func (v *Voice) Truncations() uint64 {
	return v.truncations.Load()
}
