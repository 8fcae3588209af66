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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/digest"
	"github.com/jetsetilly/drift/environment"
	"github.com/jetsetilly/drift/logger"
	"github.com/jetsetilly/drift/sink"
	"github.com/jetsetilly/drift/sink/nullsink"
	"github.com/jetsetilly/drift/synth"
)

// BadDuration is returned by Check() when the duration is not positive.
const BadDuration = "performance: bad duration (%v)"

// Result of a performance check.
type Result struct {
	Config  sink.Config
	Frames  uint64
	Audio   time.Duration
	Elapsed time.Duration
	Factor  float64
	Stats   synth.Stats

	// hash of the rendered audio. the same seed and preferences will always
	// produce the same digest
	Digest string
}

func (r Result) String() string {
	return fmt.Sprintf("%.2fx real time (%.2f seconds of audio in %.3f seconds) at %s\ndigest: %s",
		r.Factor, r.Audio.Seconds(), r.Elapsed.Seconds(), r.Config, r.Digest)
}

// Check the performance of the synth by rendering the duration of audio as
// quickly as possible. The result is written to output, which can be nil.
//
// Cancelling the context stops the check early. The result reflects the audio
// rendered up to that point.
func Check(ctx context.Context, output io.Writer, env *environment.Environment, cfg sink.Config, duration time.Duration) (Result, error) {
	if duration <= 0 {
		return Result{}, curated.Errorf(BadDuration, duration)
	}

	cfg = cfg.Normalise()

	eng, err := synth.NewEngine(env, cfg.SampleRate)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	frames := int(duration.Seconds() * float64(cfg.SampleRate))
	blocks := max(1, (frames+cfg.BlockSize-1)/cfg.BlockSize)
	dig := digest.NewAudio(eng)
	snk := nullsink.NewSink(cfg, dig, blocks, false)

	startTime := time.Now()
	if err := snk.Start(); err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	select {
	case <-snk.Finished():
	case <-ctx.Done():
	}
	elapsed := time.Since(startTime)

	if err := snk.Close(); err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	r := Result{
		Config:  cfg,
		Frames:  snk.Frames(),
		Elapsed: elapsed,
		Stats:   eng.Stats(),
		Digest:  dig.Hash(),
	}
	r.Audio, r.Factor = CalcRealTime(r.Frames, cfg.SampleRate, elapsed)

	logger.Logf(env, "performance", "%s", r.Stats)

	if output != nil {
		fmt.Fprintln(output, r)
	}

	return r, nil
}
