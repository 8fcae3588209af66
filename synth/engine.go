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
	"math"
	"sync/atomic"

	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/environment"
	"github.com/jetsetilly/drift/logger"
	"github.com/jetsetilly/drift/synth/oscillator"
	"github.com/jetsetilly/drift/synth/percussion"
)

// InvalidSampleRate is returned by NewEngine() for a sample rate that is not
// greater than zero.
const InvalidSampleRate = "synth: invalid sample rate (%d)"

// Engine renders blocks of audio. It owns the oscillator bank and the
// percussion voices.
//
// Render() is intended to be called from the audio callback and must only be
// called from one goroutine at a time. SetParams() and Stats() can be called
// from any goroutine.
type Engine struct {
	env        *environment.Environment
	sampleRate int

	// sample number of the first frame of the next block
	clock uint64

	bank *oscillator.Bank
	kick *percussion.Voice
	hat  *percussion.Voice

	// params are published by SetParams() and collected by Render()
	params  atomic.Pointer[Params]
	applied *Params

	// mix buffer. grown when a larger block is requested and never shrunk
	mix []float64

	stats counters
}

// NewEngine is the preferred method of initialisation for the Engine type.
//
// The voices of the oscillator bank are created from the preset, number of
// voices and glide duration in the environment's preferences. The initial
// parameters are also taken from the preferences.
func NewEngine(env *environment.Environment, sampleRate int) (*Engine, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf(InvalidSampleRate, sampleRate)
	}

	e := &Engine{
		env:        env,
		sampleRate: sampleRate,
	}

	preset := env.Prefs.CurrentPreset()
	voices := NewVoices(preset, env.Prefs.Voices.Int(), env.Prefs.Glide.Float(), sampleRate, env.Random)
	e.bank = oscillator.NewBank(sampleRate, env.Random, voices...)

	p := ParamsFromPrefs(env.Prefs)
	e.kick = percussion.NewVoice(percussion.Kick{}, sampleRate, p.Kick.Intervals)
	e.hat = percussion.NewVoice(percussion.HiHat{}, sampleRate, p.Hat.Intervals)
	e.SetParams(p)

	logger.Logf(env, "synth", "%s preset with %d voices at %dHz (seed %d)", preset.Name, len(voices), sampleRate, env.Random.Seed())
	for i, v := range voices {
		logger.Logf(env, "synth", "voice %d: %s", i, v)
	}

	return e, nil
}

// FollowPreferences causes changes to the preferences to be published to the
// engine.
func (e *Engine) FollowPreferences() {
	e.env.Prefs.SetChangeHook(func() {
		p := ParamsFromPrefs(e.env.Prefs)
		e.SetParams(p)
		logger.Logf(e.env, "synth", "params: %s", p)
	})
}

// SampleRate returns the sample rate of the engine.
func (e *Engine) SampleRate() int {
	return e.sampleRate
}

// SetParams publishes new parameters to the engine. They will be used from
// the start of the next block.
func (e *Engine) SetParams(p Params) {
	p = p.sanitise()
	e.params.Store(&p)
}

// Params returns the most recently published parameters.
func (e *Engine) Params() Params {
	return *e.params.Load()
}

// Bank returns the oscillator bank.
func (e *Engine) Bank() *oscillator.Bank {
	return e.bank
}

// Kick returns the kick drum voice.
func (e *Engine) Kick() *percussion.Voice {
	return e.kick
}

// Hat returns the hi-hat voice.
func (e *Engine) Hat() *percussion.Voice {
	return e.hat
}

// Clock returns the number of frames rendered so far. Safe to call from any
// goroutine.
func (e *Engine) Clock() uint64 {
	return e.stats.frames.Load()
}

// Render the next block of audio into out. Every sample written is in the
// range [-1, 1]. A block of zero frames does nothing.
//
// Render never blocks, never allocates once the mix buffer has grown to the
// largest block size, and never logs.
func (e *Engine) Render(out []float32) {
	frames := len(out)
	if frames == 0 {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			clear(out)
			e.stats.recovered.Add(1)
			e.advance(frames)
		}
	}()

	p := e.params.Load()
	if p != e.applied {
		e.kick.SetIntervals(p.Kick.Intervals)
		e.hat.SetIntervals(p.Hat.Intervals)
		e.applied = p
	}

	if cap(e.mix) < frames {
		e.mix = make([]float64, frames)
	}
	mix := e.mix[:frames]
	clear(mix)

	// oscillator bank
	if n := e.bank.Len(); n > 0 {
		gain := p.Amplitude / float64(n)
		for _, w := range e.bank.Render(e.clock, frames) {
			for i, s := range w {
				mix[i] += s * gain
			}
		}
	}

	// percussion. voices are stepped even when they are disabled so that
	// enabling a voice does not change the timing of the triggers
	e.mixPercussion(e.kick, p.Kick, mix)
	e.mixPercussion(e.hat, p.Hat, mix)

	var peak float64
	for _, s := range mix {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			clear(out)
			e.stats.silenced.Add(1)
			e.advance(frames)
			return
		}
		peak = math.Max(peak, math.Abs(s))
	}

	if p.Mute {
		clear(out)
		e.advance(frames)
		return
	}

	scale := 1.0
	if p.Normalise && peak > 1 {
		scale = 1 / peak
		e.stats.normalised.Add(1)
	} else if peak > 1 {
		e.stats.clipped.Add(1)
	}

	for i, s := range mix {
		out[i] = float32(math.Max(-1, math.Min(1, s*scale)))
	}

	e.advance(frames)
}

func (e *Engine) mixPercussion(v *percussion.Voice, p Percussion, mix []float64) {
	v.Step(e.clock, e.env.Random)
	if p.Enabled {
		v.Mix(mix, p.Level)
	} else {
		v.Advance(len(mix))
	}
}

// advance the clock at the end of a block
func (e *Engine) advance(frames int) {
	e.clock += uint64(frames)
	e.stats.frames.Store(e.clock)
	e.stats.blocks.Add(1)
}
