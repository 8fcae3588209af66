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

// Package otosink plays audio with the oto library. Oto pulls audio from an
// io.Reader, which is implemented by the Reader type in this package.
//
// The sink is registered under the name "oto". Oto only allows one context per
// process so only one oto sink can be opened.
package otosink

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/sink"
	"github.com/jetsetilly/drift/sink/pcm"
)

func init() {
	err := sink.Register("oto", func(cfg sink.Config, r sink.Renderer) (sink.Sink, error) {
		return NewSink(cfg, r)
	})
	if err != nil {
		panic(err)
	}
}

// Reader adapts a Renderer to the io.Reader interface. Samples are produced
// as 32 bit float little endian bytes.
type Reader struct {
	r     sink.Renderer
	block *pcm.Block
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(cfg sink.Config, r sink.Renderer) *Reader {
	return &Reader{
		r:     r,
		block: pcm.NewBlock(cfg.SampleRate, cfg.BlockSize),
	}
}

// Read implements the io.Reader interface. Only whole samples are written so
// the number of bytes read can be less than the length of p.
func (rd *Reader) Read(p []byte) (int, error) {
	frames := len(p) / 4
	rd.block.Resize(frames)
	rd.r.Render(rd.block.Samples())
	return copy(p, rd.block.Float32LE()), nil
}

// Sink implements the sink.Sink interface.
type Sink struct {
	crit   sync.Mutex
	ctx    *oto.Context
	player *oto.Player
}

// NewSink is the preferred method of initialisation for the Sink type.
func NewSink(cfg sink.Config, r sink.Renderer) (*Sink, error) {
	cfg = cfg.Normalise()

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   cfg.BlockDuration() * 2,
	})
	if err != nil {
		return nil, curated.Errorf("otosink: %v", err)
	}
	<-ready

	s := &Sink{
		ctx: ctx,
	}
	s.player = ctx.NewPlayer(NewReader(cfg, r))
	s.player.SetBufferSize(cfg.BlockSize * 4 * 2)

	return s, nil
}

// Start implements the sink.Sink interface.
func (s *Sink) Start() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.player == nil {
		return curated.Errorf("otosink: %v", "sink is closed")
	}
	s.player.Play()
	return nil
}

// Stop implements the sink.Sink interface.
func (s *Sink) Stop() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.player == nil {
		return nil
	}
	s.player.Pause()
	return nil
}

// Close implements the sink.Sink interface.
func (s *Sink) Close() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.player == nil {
		return nil
	}
	err := s.player.Close()
	s.player = nil
	if err != nil {
		return curated.Errorf("otosink: %v", err)
	}
	if err := s.ctx.Err(); err != nil {
		return curated.Errorf("otosink: %v", err)
	}
	return nil
}
