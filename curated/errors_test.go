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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/test"
)

const testPattern = "sink: %v"

func TestDeduplication(t *testing.T) {
	e := curated.Errorf(testPattern, "device busy")
	test.ExpectEquality(t, e.Error(), "sink: device busy")

	// wrapping with the same prefix does not repeat the prefix
	f := curated.Errorf(testPattern, e)
	test.ExpectEquality(t, f.Error(), "sink: device busy")

	// a different prefix is kept
	g := curated.Errorf("play: %v", f)
	test.ExpectEquality(t, g.Error(), "play: sink: device busy")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, "device busy")
	f := curated.Errorf("play: %v", e)

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	plain := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(plain))
	test.ExpectFailure(t, curated.Has(plain, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	plain := errors.New("plain")
	e := curated.Errorf(testPattern, plain)
	test.ExpectSuccess(t, errors.Is(e, plain))
}
