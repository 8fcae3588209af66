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

// Package pulsesink plays audio by talking directly to a PulseAudio server
// using the native protocol. No C libraries are required.
//
// The sink is registered under the name "pulse".
package pulsesink

import (
	"sync"

	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/sink"
	"github.com/jetsetilly/drift/version"
	"github.com/jfreymuth/pulse"
)

func init() {
	err := sink.Register("pulse", func(cfg sink.Config, r sink.Renderer) (sink.Sink, error) {
		return NewSink(cfg, r)
	})
	if err != nil {
		panic(err)
	}
}

// Sink implements the sink.Sink interface.
type Sink struct {
	crit   sync.Mutex
	client *pulse.Client
	stream *pulse.PlaybackStream
}

// NewSink is the preferred method of initialisation for the Sink type.
func NewSink(cfg sink.Config, r sink.Renderer) (*Sink, error) {
	cfg = cfg.Normalise()

	client, err := pulse.NewClient(pulse.ClientApplicationName(version.ApplicationName))
	if err != nil {
		return nil, curated.Errorf("pulsesink: %v", err)
	}

	reader := pulse.Float32Reader(func(out []float32) (int, error) {
		r.Render(out)
		return len(out), nil
	})

	stream, err := client.NewPlayback(reader,
		pulse.PlaybackSampleRate(cfg.SampleRate),
		pulse.PlaybackMono,
		pulse.PlaybackLatency(cfg.BlockDuration().Seconds()*2),
	)
	if err != nil {
		client.Close()
		return nil, curated.Errorf("pulsesink: %v", err)
	}

	return &Sink{
		client: client,
		stream: stream,
	}, nil
}

// Start implements the sink.Sink interface.
func (s *Sink) Start() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.stream == nil {
		return curated.Errorf("pulsesink: %v", "sink is closed")
	}
	if !s.stream.Running() {
		s.stream.Start()
	}
	return nil
}

// Stop implements the sink.Sink interface.
func (s *Sink) Stop() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.stream == nil || !s.stream.Running() {
		return nil
	}
	s.stream.Stop()
	if err := s.stream.Error(); err != nil {
		return curated.Errorf("pulsesink: %v", err)
	}
	return nil
}

// Close implements the sink.Sink interface.
func (s *Sink) Close() error {
	err := s.Stop()

	s.crit.Lock()
	defer s.crit.Unlock()

	if s.stream != nil {
		s.stream.Close()
		s.stream = nil
		s.client.Close()
	}
	return err
}
