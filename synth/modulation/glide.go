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

// DefaultGlideDuration is used in place of a glide duration that is zero,
// negative or not a finite number.
const DefaultGlideDuration = 2.0

// Glide moves a frequency from Current to Target over Duration samples. Every
// Interval samples the glide is retargeted.
//
// All timers are counted in samples.
type Glide struct {
	Current float64
	Target  float64

	// length of the glide
	Duration int64

	// samples since the last retarget
	Elapsed int64

	// samples between retargets. Redraw is the range (in seconds) from
	// which the next interval is chosen
	Interval int64
	Redraw   Range

	// the notes from which a new target is chosen
	Notes []float64

	sampleRate float64
}

// NewGlide creates a new Glide. The starting frequency is chosen from the
// notes and the target is the same as the starting frequency, meaning that
// the voice is steady until the first retarget.
//
// The first interval is drawn from the first Range and every subsequent
// interval from the redraw Range. Duration is in seconds.
func NewGlide(sampleRate int, notes []float64, duration float64, first Range, redraw Range, src Source) *Glide {
	g := &Glide{
		Notes:      notes,
		Redraw:     redraw,
		sampleRate: float64(sampleRate),
	}
	g.Duration = g.samples(SanitiseGlideDuration(duration))
	g.Current = g.pick(src)
	g.Target = g.Current
	g.Interval = max(g.samples(first.Draw(src)), 1)
	return g
}

// NewFixedGlide creates a Glide with explicit endpoints. The glide will never
// retarget if interval is not greater than zero. Duration and interval are in
// seconds.
func NewFixedGlide(sampleRate int, current float64, target float64, duration float64, interval float64) *Glide {
	g := &Glide{
		Current:    current,
		Target:     target,
		sampleRate: float64(sampleRate),
	}
	g.Duration = g.samples(SanitiseGlideDuration(duration))
	if interval > 0 {
		g.Interval = max(g.samples(interval), 1)
	} else {
		g.Interval = math.MaxInt64
	}
	return g
}

// SanitiseGlideDuration returns a glide duration (in seconds) that is safe to
// use. Zero, negative and non-finite values are replaced with
// DefaultGlideDuration.
func SanitiseGlideDuration(duration float64) float64 {
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return DefaultGlideDuration
	}
	return duration
}

func (g *Glide) String() string {
	return fmt.Sprintf("%.2fHz -> %.2fHz (%.0f%%)", g.Current, g.Target, g.Progress()*100)
}

func (g *Glide) samples(seconds float64) int64 {
	return int64(math.Round(seconds * g.sampleRate))
}

func (g *Glide) pick(src Source) float64 {
	if len(g.Notes) == 0 {
		return g.Current
	}
	return g.Notes[src.IntN(len(g.Notes))]
}

// Advance the glide timers by the number of frames in the block about to be
// rendered. Returns true if the glide was retargeted.
//
// The src argument can be nil for glides that never retarget.
func (g *Glide) Advance(frames int, src Source) bool {
	g.Elapsed += int64(frames)
	if g.Elapsed < g.Interval {
		return false
	}

	g.Elapsed = 0
	g.Current = g.Target
	if src != nil {
		g.Target = g.pick(src)
		g.Interval = max(g.samples(g.Redraw.Draw(src)), 1)
	}
	return true
}

// Progress of the glide in the range 0 to 1.
func (g *Glide) Progress() float64 {
	if g.Duration <= 0 {
		return 1
	}
	return min(float64(g.Elapsed)/float64(g.Duration), 1)
}

// Frequency blends the modulated current frequency with the target according
// to the progress of the glide. The modulated value is normally Current plus
// the output of an LFO. At full progress the target is returned exactly.
func (g *Glide) Frequency(modulated float64) float64 {
	p := g.Progress()
	if p >= 1 {
		return g.Target
	}
	return (1-p)*modulated + p*g.Target
}
