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

package pcm_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/jetsetilly/drift/sink/pcm"
	"github.com/jetsetilly/drift/test"
)

func TestToInt16(t *testing.T) {
	test.ExpectEquality(t, pcm.ToInt16(0), 0)
	test.ExpectEquality(t, pcm.ToInt16(1), math.MaxInt16)
	test.ExpectEquality(t, pcm.ToInt16(-1), -math.MaxInt16)
	test.ExpectEquality(t, pcm.ToInt16(0.5), 16384)
	test.ExpectEquality(t, pcm.ToInt16(2), math.MaxInt16)
	test.ExpectEquality(t, pcm.ToInt16(-2), math.MinInt16)
	test.ExpectEquality(t, pcm.ToInt16(float32(math.NaN())), 0)
}

func TestBlock(t *testing.T) {
	b := pcm.NewBlock(44100, 4)
	test.ExpectEquality(t, b.Frames(), 4)
	test.ExpectEquality(t, b.Float.Format.SampleRate, 44100)
	test.ExpectEquality(t, b.Float.Format.NumChannels, 1)

	copy(b.Samples(), []float32{0, 1, -1, 0.5})

	ints := b.Int16()
	test.DemandEquality(t, len(ints.Data), 4)
	test.ExpectEquality(t, ints.Data[1], math.MaxInt16)
	test.ExpectEquality(t, ints.SourceBitDepth, 16)

	le := b.Int16LE()
	test.DemandEquality(t, len(le), 8)
	test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(le[4:])), int16(-math.MaxInt16))

	f := b.Float32LE()
	test.DemandEquality(t, len(f), 16)
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(f[12:])), float32(0.5))

	// shrinking keeps the allocation
	b.Resize(2)
	test.ExpectEquality(t, b.Frames(), 2)
	test.ExpectEquality(t, len(b.Float32LE()), 8)
	test.ExpectEquality(t, cap(b.Samples()), 4)

	b.Resize(-1)
	test.ExpectEquality(t, b.Frames(), 0)
}
