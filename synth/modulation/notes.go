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

package modulation

// CMajor is the C major scale starting at middle C, in Hz.
var CMajor = []float64{261.63, 293.66, 329.63, 349.23, 392.00, 440.00, 493.88}

// NoteSets indexed by name.
var NoteSets = map[string][]float64{
	"cmajor": CMajor,
}
