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

package otosink_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/jetsetilly/drift/sink"
	"github.com/jetsetilly/drift/sink/otosink"
	"github.com/jetsetilly/drift/test"
)

// ramp renders a rising sequence of samples that continues across blocks
type ramp struct {
	next float32
}

func (r *ramp) Render(out []float32) {
	for i := range out {
		out[i] = r.next
		r.next += 0.25
	}
}

func TestReader(t *testing.T) {
	rd := otosink.NewReader(sink.Config{SampleRate: 44100, BlockSize: 64}, &ramp{})

	p := make([]byte, 10)
	n, err := rd.Read(p)
	test.ExpectSuccess(t, err)

	// two whole samples. the remaining two bytes are not written
	test.ExpectEquality(t, n, 8)
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(p[0:])), float32(0))
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(p[4:])), float32(0.25))

	// the next read continues from where the last one ended
	p = make([]byte, 4096)
	n, err = rd.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4096)
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(p[0:])), float32(0.5))

	// a read smaller than a single sample writes nothing
	n, err = rd.Read(make([]byte, 3))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
}
