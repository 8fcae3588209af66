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

package modulation

import (
	"fmt"
	"math"
)

// Source of random numbers used when choosing modulation parameters.
// Satisfied by the random.Random type.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Range is a bounded interval from which a value is drawn uniformly.
type Range struct {
	Min float64
	Max float64
}

// Fixed returns a Range that always draws the same value.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

func (r Range) String() string {
	return fmt.Sprintf("[%.3f, %.3f]", r.Min, r.Max)
}

// Draw a value from the range. If Min is greater than Max the two values are
// swapped.
func (r Range) Draw(src Source) float64 {
	min, max := r.Min, r.Max
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + src.Float64()*(max-min)
}

// LFO is a low frequency sine oscillator. The speed is in Hz and the depth is
// in whatever unit is being modulated.
type LFO struct {
	Speed float64
	Depth float64
}

// NewLFO creates an LFO with speed and depth drawn from the ranges.
func NewLFO(speed Range, depth Range, src Source) LFO {
	return LFO{
		Speed: speed.Draw(src),
		Depth: depth.Draw(src),
	}
}

func (l LFO) String() string {
	return fmt.Sprintf("%.3fHz x %.3f", l.Speed, l.Depth)
}

// Offset returns the value of the LFO at time t (in seconds).
func (l LFO) Offset(t float64) float64 {
	if l.Depth == 0 {
		return 0
	}
	return l.Depth * math.Sin(2*math.Pi*l.Speed*t)
}

// TremoloShape selects the gain law used by Tremolo.
type TremoloShape int

// List of valid TremoloShape values.
const (
	Bipolar TremoloShape = iota
	Unipolar
)

func (s TremoloShape) String() string {
	switch s {
	case Bipolar:
		return "bipolar"
	case Unipolar:
		return "unipolar"
	}
	return "unknown"
}

// Tremolo is amplitude modulation. It is applied to a waveform after it has
// been generated and never affects frequency.
type Tremolo struct {
	LFO
	Shape TremoloShape
}

// NewTremolo creates a Tremolo with speed and depth drawn from the ranges.
func NewTremolo(shape TremoloShape, speed Range, depth Range, src Source) Tremolo {
	return Tremolo{
		LFO:   NewLFO(speed, depth, src),
		Shape: shape,
	}
}

// Gain returns the multiplier to apply to a sample at time t (in seconds). A
// Tremolo with zero depth always returns 1.
func (tr Tremolo) Gain(t float64) float64 {
	if tr.Depth == 0 {
		return 1
	}
	s := math.Sin(2 * math.Pi * tr.Speed * t)
	if tr.Shape == Unipolar {
		return 1 - tr.Depth*(1+s)/2
	}
	return 1 + tr.Depth*s
}
