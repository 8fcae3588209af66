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

package prefs_test

import (
	"errors"
	"math"
	"testing"

	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/prefs"
	"github.com/jetsetilly/drift/test"
)

func TestBool(t *testing.T) {
	v := prefs.NewBool(true)
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectSuccess(t, v.Set("false"))
	test.ExpectEquality(t, v.Bool(), false)

	test.ExpectSuccess(t, v.Set(" TRUE "))
	test.ExpectEquality(t, v.Bool(), true)

	// anything other than "true" is false
	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Bool(), false)

	test.ExpectFailure(t, v.Set(10))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Bool(), true)
}

func TestString(t *testing.T) {
	v := prefs.NewString("ambient")
	test.ExpectEquality(t, v.String(), "ambient")

	test.ExpectSuccess(t, v.Set(" drone "))
	test.ExpectEquality(t, v.String(), "drone")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(string), "ambient")
}

func TestInt(t *testing.T) {
	v := prefs.NewInt(4)
	test.ExpectEquality(t, v.Int(), 4)

	test.ExpectSuccess(t, v.Set("6"))
	test.ExpectEquality(t, v.Int(), 6)

	err := v.Set("six")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.BadValue))
	test.ExpectEquality(t, v.Int(), 6)

	// values outside of the range are clamped
	v.SetRange(1, 16)
	test.ExpectSuccess(t, v.Set(100))
	test.ExpectEquality(t, v.Int(), 16)
	test.ExpectSuccess(t, v.Set(-1))
	test.ExpectEquality(t, v.Int(), 1)
}

func TestFloat(t *testing.T) {
	v := prefs.NewFloat(0.4)
	test.ExpectEquality(t, v.String(), "0.400")

	test.ExpectSuccess(t, v.Set("0.25"))
	test.ExpectEquality(t, v.Float(), 0.25)

	test.ExpectSuccess(t, v.Set(1))
	test.ExpectEquality(t, v.Float(), 1.0)

	test.ExpectFailure(t, v.Set(math.NaN()))
	test.ExpectFailure(t, v.Set(math.Inf(1)))
	test.ExpectEquality(t, v.Float(), 1.0)

	v.SetRange(0, 0.5)
	test.ExpectEquality(t, v.Float(), 0.5)
	test.ExpectSuccess(t, v.Set(-3.0))
	test.ExpectEquality(t, v.Float(), 0.0)

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Float(), 0.4)
}

func TestHooks(t *testing.T) {
	v := prefs.NewFloat(0.1)

	var post float64
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(float64)
		return nil
	})
	test.ExpectSuccess(t, v.Set(0.2))
	test.ExpectEquality(t, post, 0.2)

	// pre hook can veto the change
	veto := errors.New("veto")
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(float64) > 0.5 {
			return veto
		}
		return nil
	})
	test.ExpectFailure(t, v.Set(0.9))
	test.ExpectEquality(t, v.Float(), 0.2)
	test.ExpectEquality(t, post, 0.2)
}

func TestGroup(t *testing.T) {
	g := prefs.NewGroup()

	voices := prefs.NewInt(4)
	level := prefs.NewFloat(0.4)
	kick := prefs.NewBool(true)

	test.DemandSuccess(t, g.Add("synth.voices", voices))
	test.DemandSuccess(t, g.Add("kick.level", level))
	test.DemandSuccess(t, g.Add("kick.enabled", kick))

	err := g.Add("kick.level", level)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	test.ExpectSuccess(t, g.Set("kick.level", "0.5"))
	test.ExpectEquality(t, level.Float(), 0.5)

	err = g.Set("snare.level", "0.5")
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))

	v, err := g.Get("synth.voices")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.(int), 4)

	test.ExpectEquality(t, g.String(), "kick.enabled::true\nkick.level::0.500\nsynth.voices::4\n")

	test.ExpectSuccess(t, g.Reset())
	test.ExpectEquality(t, level.Float(), 0.4)
}

func TestGroupCommandLine(t *testing.T) {
	g := prefs.NewGroup()

	voices := prefs.NewInt(4)
	level := prefs.NewFloat(0.4)
	test.DemandSuccess(t, g.Add("synth.voices", voices))
	test.DemandSuccess(t, g.Add("kick.level", level))

	prefs.PushCommandLineStack("synth.voices::6; kick.level::0.25; hat.level::0.1")
	test.ExpectSuccess(t, g.ApplyCommandLine())
	test.ExpectEquality(t, voices.Int(), 6)
	test.ExpectEquality(t, level.Float(), 0.25)

	// only the unused key remains on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hat.level::0.1")
}
