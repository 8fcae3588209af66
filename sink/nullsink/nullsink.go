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

// Package nullsink is a sink with no audio device. Blocks are rendered and
// discarded, either as quickly as possible or at the rate a real device would
// request them.
//
// The sink is registered under the name "null" and is paced in real time.
package nullsink

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/drift/sink"
)

func init() {
	err := sink.Register("null", func(cfg sink.Config, r sink.Renderer) (sink.Sink, error) {
		return NewSink(cfg, r, 0, true), nil
	})
	if err != nil {
		panic(err)
	}
}

// Sink implements the sink.Sink interface.
type Sink struct {
	cfg   sink.Config
	r     sink.Renderer
	block []float32

	// number of blocks to render before finishing. zero means render until
	// stopped
	blocks int

	// render blocks at the rate of a real device
	paced bool

	crit sync.Mutex
	stop chan struct{}
	done chan struct{}

	rendered     int
	frames       atomic.Uint64
	finished     chan struct{}
	finishedOnce sync.Once
}

// NewSink is the preferred method of initialisation for the Sink type.
func NewSink(cfg sink.Config, r sink.Renderer, blocks int, paced bool) *Sink {
	cfg = cfg.Normalise()
	return &Sink{
		cfg:      cfg,
		r:        r,
		block:    make([]float32, cfg.BlockSize),
		blocks:   blocks,
		paced:    paced,
		finished: make(chan struct{}),
	}
}

// Start implements the sink.Sink interface.
func (s *Sink) Start() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.stop != nil {
		return nil
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)

	return nil
}

// Stop implements the sink.Sink interface.
func (s *Sink) Stop() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.stop == nil {
		return nil
	}

	close(s.stop)
	<-s.done
	s.stop = nil
	s.done = nil

	return nil
}

// Close implements the sink.Sink interface.
func (s *Sink) Close() error {
	return s.Stop()
}

// Finished returns a channel that is closed when the requested number of
// blocks have been rendered. The channel is never closed for a sink created
// with zero blocks.
func (s *Sink) Finished() <-chan struct{} {
	return s.finished
}

// Frames returns the number of frames rendered so far.
func (s *Sink) Frames() uint64 {
	return s.frames.Load()
}

func (s *Sink) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var tick <-chan time.Time
	if s.paced {
		tck := time.NewTicker(s.cfg.BlockDuration())
		defer tck.Stop()
		tick = tck.C
	}

	for {
		select {
		case <-stop:
			return
		default:
		}

		if s.blocks > 0 && s.rendered >= s.blocks {
			s.finishedOnce.Do(func() { close(s.finished) })
			return
		}

		s.r.Render(s.block)
		s.rendered++
		s.frames.Add(uint64(len(s.block)))

		if tick != nil {
			select {
			case <-stop:
				return
			case <-tick:
			}
		}
	}
}
