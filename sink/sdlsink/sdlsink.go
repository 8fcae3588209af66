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

// Package sdlsink plays audio with SDL. The SDL audio queue is used rather
// than the SDL callback, so audio must be pushed to the device. A pump
// goroutine keeps the queue topped up with signed 16 bit blocks.
//
// The sink is registered under the name "sdl".
package sdlsink

import (
	"sync"
	"time"

	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/logger"
	"github.com/jetsetilly/drift/sink"
	"github.com/jetsetilly/drift/sink/pcm"

	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	err := sink.Register("sdl", func(cfg sink.Config, r sink.Renderer) (sink.Sink, error) {
		return NewSink(cfg, r)
	})
	if err != nil {
		panic(err)
	}
}

// the number of blocks to keep in the SDL queue. too few and the device will
// underflow when the pump goroutine is late. too many and changes to the
// parameters will be slow to be heard
const queuedBlocks = 3

// Sink implements the sink.Sink interface.
type Sink struct {
	cfg sink.Config
	r   sink.Renderer

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	block *pcm.Block

	crit sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewSink is the preferred method of initialisation for the Sink type.
func NewSink(cfg sink.Config, r sink.Renderer) (*Sink, error) {
	cfg = cfg.Normalise()

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlsink: %v", err)
	}

	s := &Sink{
		cfg:   cfg,
		r:     r,
		block: pcm.NewBlock(cfg.SampleRate, cfg.BlockSize),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(cfg.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(min(cfg.BlockSize, 65535)),
	}

	var err error
	s.id, err = sdl.OpenAudioDevice("", false, spec, &s.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlsink: %v", err)
	}

	logger.Logf(logger.Allow, "sdlsink", "device opened: %dHz, %d samples per buffer", s.spec.Freq, s.spec.Samples)

	return s, nil
}

// Start implements the sink.Sink interface.
func (s *Sink) Start() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.stop != nil {
		return nil
	}

	// fill the queue before unpausing the device
	if err := s.pump(); err != nil {
		return err
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)

	sdl.PauseAudioDevice(s.id, false)

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

	sdl.PauseAudioDevice(s.id, true)
	sdl.ClearQueuedAudio(s.id)

	return nil
}

// Close implements the sink.Sink interface.
func (s *Sink) Close() error {
	err := s.Stop()
	sdl.CloseAudioDevice(s.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return err
}

// run the pump at twice the block rate
func (s *Sink) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	tck := time.NewTicker(s.cfg.BlockDuration() / 2)
	defer tck.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tck.C:
			// there is nowhere to report an error from the pump so the
			// device is left to underflow
			_ = s.pump()
		}
	}
}

// pump renders blocks until the queue holds queuedBlocks blocks
func (s *Sink) pump() error {
	blockBytes := uint32(s.cfg.BlockSize * 2)
	for sdl.GetQueuedAudioSize(s.id) < blockBytes*queuedBlocks {
		s.r.Render(s.block.Samples())
		if err := sdl.QueueAudio(s.id, s.block.Int16LE()); err != nil {
			return curated.Errorf("sdlsink: %v", err)
		}
	}
	return nil
}
