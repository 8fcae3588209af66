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

package preferences

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/drift/curated"
)

// DefaultIntervals is the set of trigger intervals (in seconds) used by both
// percussion voices.
const DefaultIntervals = "0.25, 0.5, 1.0"

// ParseIntervals converts a comma separated list of durations (in seconds) to
// a slice of float64. Every value must be a finite number greater than zero
// and at least one value must be present.
func ParseIntervals(s string) ([]float64, error) {
	var iv []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, curated.Errorf(BadIntervals, s)
		}
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, curated.Errorf(BadIntervals, s)
		}
		iv = append(iv, v)
	}
	if len(iv) == 0 {
		return nil, curated.Errorf(BadIntervals, s)
	}
	return iv, nil
}

// FormatIntervals is the reverse of ParseIntervals().
func FormatIntervals(iv []float64) string {
	s := make([]string, len(iv))
	for i, v := range iv {
		s[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(s, ", ")
}
