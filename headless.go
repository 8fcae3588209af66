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

package main

import (
	"context"
	"os"
	"time"

	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/logger"
	"github.com/jetsetilly/drift/modalflag"
	"github.com/jetsetilly/drift/performance"
	"github.com/jetsetilly/drift/sink"
)

// perform renders audio without an audio device and reports how much faster
// than real time the synth is
func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	rate := md.AddInt("rate", sink.DefaultSampleRate, "sample rate")
	block := md.AddInt("block", sink.DefaultBlockSize, "number of frames in each block")
	duration := md.AddDuration("duration", 10*time.Second, "duration of audio to render")
	cl := md.AddString("prefs", "", "preferences to apply (key::value; key::value)")
	echo := md.AddBool("echo", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if *echo {
		logger.SetEcho(os.Stdout, false)
	}

	env, err := newEnvironment(ctx, *cl, "")
	if err != nil {
		return err
	}

	cfg := sink.Config{SampleRate: *rate, BlockSize: *block}
	_, err = performance.Check(ctx, os.Stdout, env, cfg, *duration)
	return err
}
