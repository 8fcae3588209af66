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
	"strings"

	"github.com/jetsetilly/drift/synth/modulation"
)

// Preset describes how the voices of the oscillator bank are created and
// which percussion voices are enabled.
//
// Values in a Preset are copied into the preferences when the preset is
// selected. The voice construction ranges are used directly when a synth is
// created.
type Preset struct {
	Name        string
	Description string

	Voices    int
	Amplitude float64

	// voices without a note set choose a base frequency from the Base range
	Notes []float64
	Base  modulation.Range

	// frequency modulation
	FreqLFOSpeed modulation.Range
	FreqLFODepth modulation.Range

	// amplitude modulation. zero depth ranges mean no tremolo
	TremoloShape modulation.TremoloShape
	TremoloSpeed modulation.Range
	TremoloDepth modulation.Range

	// glide between notes. only used if Notes is not empty
	Glide         bool
	GlideDuration float64
	FirstInterval modulation.Range
	Interval      modulation.Range

	Kick bool
	Hat  bool
}

// DefaultPreset is the preset used when no other preset is specified.
const DefaultPreset = "ambient"

// Presets is the list of available presets.
var Presets = []Preset{
	{
		Name:         "drone",
		Description:  "unrelated sine voices drifting slowly around fixed frequencies",
		Voices:       5,
		Amplitude:    0.3,
		Base:         modulation.Range{Min: 100, Max: 500},
		FreqLFOSpeed: modulation.Range{Min: 0.05, Max: 0.2},
		FreqLFODepth: modulation.Range{Min: 0.5, Max: 5},
	},
	{
		Name:          "glide",
		Description:   "voices gliding between the notes of the C major scale",
		Voices:        4,
		Amplitude:     0.1,
		Notes:         modulation.CMajor,
		FreqLFOSpeed:  modulation.Range{Min: 0.1, Max: 3},
		FreqLFODepth:  modulation.Range{Min: 0.05, Max: 0.2},
		TremoloShape:  modulation.Bipolar,
		TremoloSpeed:  modulation.Range{Min: 0.1, Max: 1},
		TremoloDepth:  modulation.Range{Min: 0.5, Max: 1},
		Glide:         true,
		GlideDuration: 2.0,
		FirstInterval: modulation.Range{Min: 2, Max: 7},
		Interval:      modulation.Range{Min: 4, Max: 7},
	},
	{
		Name:          "melody",
		Description:   "a single voice stepping through the C major scale",
		Voices:        1,
		Amplitude:     0.3,
		Notes:         modulation.CMajor,
		Glide:         true,
		GlideDuration: 0.005,
		FirstInterval: modulation.Fixed(0.5),
		Interval:      modulation.Fixed(0.5),
	},
	{
		Name:          "ambient",
		Description:   "gliding voices with kick and hi-hat",
		Voices:        4,
		Amplitude:     0.3,
		Notes:         modulation.CMajor,
		FreqLFOSpeed:  modulation.Range{Min: 0.1, Max: 3},
		FreqLFODepth:  modulation.Range{Min: 0.05, Max: 0.2},
		TremoloShape:  modulation.Bipolar,
		TremoloSpeed:  modulation.Range{Min: 0.1, Max: 1},
		TremoloDepth:  modulation.Range{Min: 0.5, Max: 1},
		Glide:         true,
		GlideDuration: 2.0,
		FirstInterval: modulation.Range{Min: 2, Max: 7},
		Interval:      modulation.Range{Min: 4, Max: 7},
		Kick:          true,
		Hat:           true,
	},
}

// LookupPreset returns the named preset. The name is not case sensitive.
func LookupPreset(name string) (Preset, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetNames returns the names of all presets in the order they are defined.
func PresetNames() []string {
	n := make([]string, 0, len(Presets))
	for _, p := range Presets {
		n = append(n, p.Name)
	}
	return n
}
