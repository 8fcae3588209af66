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

package oscillator

import (
	"strings"

	"github.com/jetsetilly/drift/synth/modulation"
)

// Bank is a collection of voices that are rendered together.
type Bank struct {
	sampleRate float64
	voices     []*Voice

	// source of random numbers for glide retargeting
	src modulation.Source

	// one scratch buffer per voice. grown when a larger block is requested
	// and never shrunk
	scratch [][]float64
}

// NewBank is the preferred method of initialisation for the Bank type.
func NewBank(sampleRate int, src modulation.Source, voices ...*Voice) *Bank {
	b := &Bank{
		sampleRate: float64(sampleRate),
		src:        src,
	}
	b.SetVoices(voices...)
	return b
}

func (b *Bank) String() string {
	s := strings.Builder{}
	for i, v := range b.voices {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(v.String())
	}
	return s.String()
}

// SetVoices replaces the voices in the bank. Must not be called while a block
// is being rendered.
func (b *Bank) SetVoices(voices ...*Voice) {
	b.voices = voices
	b.scratch = make([][]float64, len(voices))
}

// Voices returns the voices in the bank. The slice should not be modified.
func (b *Bank) Voices() []*Voice {
	return b.voices
}

// Len returns the number of voices in the bank.
func (b *Bank) Len() int {
	return len(b.voices)
}

// Render a block of frames for every voice. The clock is the sample number of
// the first frame of the block.
//
// The returned slices are only valid until the next call to Render().
func (b *Bank) Render(clock uint64, frames int) [][]float64 {
	for i, v := range b.voices {
		if cap(b.scratch[i]) < frames {
			b.scratch[i] = make([]float64, frames)
		}
		b.scratch[i] = b.scratch[i][:frames]
		v.render(b.scratch[i], clock, b.sampleRate, b.src)
	}
	return b.scratch
}
