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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/jetsetilly/drift/sink"
)

// the buffer begins with the previous digest so that every digest depends on
// all the samples that came before it
const audioBufferStart = sha1.Size

// the number of samples hashed at once
const audioBufferSamples = 4096

const audioBufferLength = audioBufferStart + audioBufferSamples*4

// Audio implements the sink.Renderer and Digest interfaces. Samples are hashed
// as 32 bit float little endian values.
//
// The digest is of the samples in the order they were rendered and does not
// depend on the block sizes.
type Audio struct {
	r sink.Renderer

	crit     sync.Mutex
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(r sink.Renderer) *Audio {
	return &Audio{
		r:        r,
		buffer:   make([]byte, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface. Samples that have not yet filled the
// buffer are included in the hash.
func (dig *Audio) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()

	if dig.bufferCt == audioBufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}

	// the partial buffer is hashed without changing the running digest
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()

	clear(dig.digest[:])
	clear(dig.buffer)
	dig.bufferCt = audioBufferStart
}

// Render implements the sink.Renderer interface.
func (dig *Audio) Render(out []float32) {
	dig.r.Render(out)

	dig.crit.Lock()
	defer dig.crit.Unlock()

	for _, s := range out {
		binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt:], math.Float32bits(s))
		dig.bufferCt += 4
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
