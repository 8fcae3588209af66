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

package nullsink_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/drift/environment"
	"github.com/jetsetilly/drift/sink"
	"github.com/jetsetilly/drift/sink/nullsink"
	"github.com/jetsetilly/drift/synth"
	"github.com/jetsetilly/drift/test"
)

type counter struct {
	calls atomic.Int64
}

func (c *counter) Render(out []float32) {
	c.calls.Add(1)
}

func TestBlocks(t *testing.T) {
	c := &counter{}
	s := nullsink.NewSink(sink.Config{SampleRate: 44100, BlockSize: 256}, c, 10, false)

	test.ExpectSuccess(t, s.Start())
	select {
	case <-s.Finished():
	case <-time.After(5 * time.Second):
		t.Fatalf("sink did not finish")
	}
	test.ExpectSuccess(t, s.Stop())

	test.ExpectEquality(t, c.calls.Load(), int64(10))
	test.ExpectEquality(t, s.Frames(), uint64(2560))
}

func TestPaced(t *testing.T) {
	c := &counter{}
	s := nullsink.NewSink(sink.Config{SampleRate: 44100, BlockSize: 441}, c, 0, true)

	test.ExpectSuccess(t, s.Start())

	// starting twice is harmless
	test.ExpectSuccess(t, s.Start())

	time.Sleep(100 * time.Millisecond)
	test.ExpectSuccess(t, s.Stop())

	// blocks of 10ms for 100ms. the test is generous with the upper limit
	// because the ticker can be late but never early
	n := c.calls.Load()
	test.ExpectSuccess(t, n > 0 && n <= 15, n)

	// nothing is rendered after Stop() returns
	time.Sleep(30 * time.Millisecond)
	test.ExpectEquality(t, c.calls.Load(), n)

	test.ExpectSuccess(t, s.Stop())
	test.ExpectSuccess(t, s.Close())
}

func TestWithEngine(t *testing.T) {
	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Normalise(1))

	e, err := synth.NewEngine(env, 22050)
	test.DemandSuccess(t, err)

	s, err := sink.Open("null", sink.Config{SampleRate: 22050, BlockSize: 2205}, e)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, s.Start())
	time.Sleep(250 * time.Millisecond)
	test.ExpectSuccess(t, s.Close())

	test.ExpectSuccess(t, e.Clock() > 0)
	test.ExpectEquality(t, e.Clock()%2205, uint64(0))
}
