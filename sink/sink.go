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

package sink

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jetsetilly/drift/curated"
)

// sentinel error patterns
const (
	UnknownSink   = "sink: unknown sink (%s)"
	DuplicateSink = "sink: duplicate sink (%s)"
)

// Renderer is implemented by anything that can produce blocks of mono
// float32 samples. The synth.Engine type is the main implementation.
//
// Render is called from the goroutine owned by the sink and is never called
// concurrently.
type Renderer interface {
	Render(out []float32)
}

// Sink is an audio device that pulls audio from a Renderer.
type Sink interface {
	// Start playing audio. Start can be called again after Stop
	Start() error

	// Stop playing audio. Stop does not return until the Renderer will no
	// longer be called
	Stop() error

	// Close the device. The Sink should not be used after Close
	Close() error
}

// default and limits of the Config fields
const (
	DefaultSampleRate = 44100
	DefaultBlockSize  = 512
	MinBlockSize      = 16
	MaxBlockSize      = 16384
)

// Config is the configuration of a Sink. It is fixed when the sink is opened.
type Config struct {
	SampleRate int

	// number of frames in each call to Render. Some devices may request
	// fewer frames
	BlockSize int
}

func (cfg Config) String() string {
	return fmt.Sprintf("%dHz, %d frames", cfg.SampleRate, cfg.BlockSize)
}

// Normalise returns a Config with zero values replaced by the defaults and
// the block size clamped to the supported range.
func (cfg Config) Normalise() Config {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	cfg.BlockSize = max(MinBlockSize, min(MaxBlockSize, cfg.BlockSize))
	return cfg
}

// BlockDuration returns the length of time represented by one block.
func (cfg Config) BlockDuration() time.Duration {
	return time.Duration(cfg.BlockSize) * time.Second / time.Duration(cfg.SampleRate)
}

// Opener creates a new Sink.
type Opener func(cfg Config, r Renderer) (Sink, error)

var registry struct {
	crit    sync.Mutex
	openers map[string]Opener
}

// Register makes a sink available to Open() under the given name. Register is
// normally called from the init() function of the package implementing the
// sink.
func Register(name string, open Opener) error {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	if registry.openers == nil {
		registry.openers = make(map[string]Opener)
	}
	if _, ok := registry.openers[name]; ok {
		return curated.Errorf(DuplicateSink, name)
	}
	registry.openers[name] = open
	return nil
}

// Names returns the sorted list of registered sinks.
func Names() []string {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	n := make([]string, 0, len(registry.openers))
	for k := range registry.openers {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Open the named sink. The Config is normalised before it is passed to the
// sink and the Renderer is wrapped so that it is never asked for more than
// BlockSize frames at a time.
func Open(name string, cfg Config, r Renderer) (Sink, error) {
	registry.crit.Lock()
	open, ok := registry.openers[name]
	registry.crit.Unlock()

	if !ok {
		return nil, curated.Errorf(UnknownSink, name)
	}

	cfg = cfg.Normalise()
	return open(cfg, &Chunker{Renderer: r, BlockSize: cfg.BlockSize})
}
