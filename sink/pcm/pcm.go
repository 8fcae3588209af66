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

// Package pcm converts blocks of float32 samples into the formats required by
// audio devices. The sample format of a block is described by the Format type
// of the go-audio package.
package pcm

import (
	"encoding/binary"
	"math"

	"github.com/go-audio/audio"
)

// Format returns the audio format of a mono stream at the given sample rate.
func Format(sampleRate int) *audio.Format {
	return &audio.Format{
		NumChannels: 1,
		SampleRate:  sampleRate,
	}
}

// Block is a reusable buffer for one block of mono audio in each of the
// supported sample formats. Buffers are grown as required and never shrunk.
type Block struct {
	Float *audio.Float32Buffer
	Int   *audio.IntBuffer

	bytes []byte
}

// NewBlock is the preferred method of initialisation for the Block type.
func NewBlock(sampleRate int, frames int) *Block {
	f := Format(sampleRate)
	b := &Block{
		Float: &audio.Float32Buffer{Format: f, SourceBitDepth: 32},
		Int:   &audio.IntBuffer{Format: f, SourceBitDepth: 16},
	}
	b.Resize(frames)
	return b
}

// Resize the block to the number of frames.
func (b *Block) Resize(frames int) {
	frames = max(frames, 0)
	if cap(b.Float.Data) < frames {
		b.Float.Data = make([]float32, frames)
	}
	b.Float.Data = b.Float.Data[:frames]
}

// Samples returns the float32 samples of the block.
func (b *Block) Samples() []float32 {
	return b.Float.Data
}

// Frames returns the number of frames in the block.
func (b *Block) Frames() int {
	return b.Float.NumFrames()
}

// Int16 converts the float32 samples to 16 bit integers. Samples outside the
// range [-1, 1] are clamped.
func (b *Block) Int16() *audio.IntBuffer {
	n := len(b.Float.Data)
	if cap(b.Int.Data) < n {
		b.Int.Data = make([]int, n)
	}
	b.Int.Data = b.Int.Data[:n]
	for i, s := range b.Float.Data {
		b.Int.Data[i] = ToInt16(s)
	}
	return b.Int
}

// Int16LE returns the samples as signed 16 bit little endian bytes. The
// returned slice is only valid until the next call to Int16LE() or
// Float32LE().
func (b *Block) Int16LE() []byte {
	ints := b.Int16()
	b.grow(len(ints.Data) * 2)
	for i, v := range ints.Data {
		binary.LittleEndian.PutUint16(b.bytes[i*2:], uint16(int16(v)))
	}
	return b.bytes
}

// Float32LE returns the samples as 32 bit float little endian bytes. The
// returned slice is only valid until the next call to Int16LE() or
// Float32LE().
func (b *Block) Float32LE() []byte {
	b.grow(len(b.Float.Data) * 4)
	PutFloat32LE(b.bytes, b.Float.Data)
	return b.bytes
}

func (b *Block) grow(n int) {
	if cap(b.bytes) < n {
		b.bytes = make([]byte, n)
	}
	b.bytes = b.bytes[:n]
}

// ToInt16 converts a single float32 sample to the 16 bit integer range. NaN
// is converted to zero.
func ToInt16(s float32) int {
	if math.IsNaN(float64(s)) {
		return 0
	}
	v := math.Round(float64(s) * math.MaxInt16)
	return int(math.Max(math.MinInt16, math.Min(math.MaxInt16, v)))
}

// PutFloat32LE writes the samples into dst as 32 bit float little endian
// bytes. The dst slice must be at least four times the length of src.
func PutFloat32LE(dst []byte, src []float32) {
	for i, s := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(s))
	}
}
