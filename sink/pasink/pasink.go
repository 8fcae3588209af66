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

// Package pasink plays audio with PortAudio. PortAudio calls the renderer
// directly from its audio thread.
//
// The sink is registered under the name "portaudio".
package pasink

import (
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/sink"
)

func init() {
	err := sink.Register("portaudio", func(cfg sink.Config, r sink.Renderer) (sink.Sink, error) {
		return NewSink(cfg, r)
	})
	if err != nil {
		panic(err)
	}
}

// Sink implements the sink.Sink interface.
type Sink struct {
	crit    sync.Mutex
	stream  *portaudio.Stream
	running bool
}

// NewSink is the preferred method of initialisation for the Sink type.
func NewSink(cfg sink.Config, r sink.Renderer) (*Sink, error) {
	cfg = cfg.Normalise()

	if err := portaudio.Initialize(); err != nil {
		return nil, curated.Errorf("pasink: %v", err)
	}

	stream, err := portaudio.OpenDefaultStream(0, 1, float64(cfg.SampleRate), cfg.BlockSize, func(out []float32) {
		r.Render(out)
	})
	if err != nil {
		_ = portaudio.Terminate()
		return nil, curated.Errorf("pasink: %v", err)
	}

	return &Sink{stream: stream}, nil
}

// Start implements the sink.Sink interface.
func (s *Sink) Start() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.running {
		return nil
	}
	if err := s.stream.Start(); err != nil {
		return curated.Errorf("pasink: %v", err)
	}
	s.running = true
	return nil
}

// Stop implements the sink.Sink interface. PortAudio waits for pending
// callbacks to complete before the stream is stopped.
func (s *Sink) Stop() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if !s.running {
		return nil
	}
	s.running = false
	if err := s.stream.Stop(); err != nil {
		return curated.Errorf("pasink: %v", err)
	}
	return nil
}

// Close implements the sink.Sink interface.
func (s *Sink) Close() error {
	if err := s.Stop(); err != nil {
		return err
	}
	if err := s.stream.Close(); err != nil {
		return curated.Errorf("pasink: %v", err)
	}
	if err := portaudio.Terminate(); err != nil {
		return curated.Errorf("pasink: %v", err)
	}
	return nil
}
