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

package synth

import (
	"fmt"
	"sync/atomic"
)

// counters are written by the audio goroutine and read by anything else
type counters struct {
	frames     atomic.Uint64
	blocks     atomic.Uint64
	silenced   atomic.Uint64
	normalised atomic.Uint64
	clipped    atomic.Uint64
	recovered  atomic.Uint64
}

// Stats is a snapshot of the engine's counters.
type Stats struct {
	Frames uint64
	Blocks uint64

	// blocks replaced with silence because they contained a NaN or an
	// infinity
	Silenced uint64

	// blocks that were scaled down because their peak was above 1.0
	Normalised uint64

	// blocks that were clamped because their peak was above 1.0 and
	// normalisation was disabled
	Clipped uint64

	// blocks replaced with silence because rendering panicked
	Recovered uint64

	KickTriggers    uint64
	HatTriggers     uint64
	KickTruncations uint64
	HatTruncations  uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("frames=%d blocks=%d silenced=%d normalised=%d clipped=%d recovered=%d kick=%d/%d hat=%d/%d",
		s.Frames, s.Blocks, s.Silenced, s.Normalised, s.Clipped, s.Recovered,
		s.KickTriggers, s.KickTruncations, s.HatTriggers, s.HatTruncations)
}

// Stats returns a snapshot of the engine's counters. Safe to call from any
// goroutine.
func (e *Engine) Stats() Stats {
	return Stats{
		Frames:          e.stats.frames.Load(),
		Blocks:          e.stats.blocks.Load(),
		Silenced:        e.stats.silenced.Load(),
		Normalised:      e.stats.normalised.Load(),
		Clipped:         e.stats.clipped.Load(),
		Recovered:       e.stats.recovered.Load(),
		KickTriggers:    e.kick.Triggers(),
		HatTriggers:     e.hat.Triggers(),
		KickTruncations: e.kick.Truncations(),
		HatTruncations:  e.hat.Truncations(),
	}
}
