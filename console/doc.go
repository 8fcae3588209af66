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

// Package console provides keyboard control of a running synth. Each key press
// changes a preference and the preferences change hook takes care of passing
// the new value to the synth.
//
//	+ or =    increase amplitude
//	-         decrease amplitude
//	k         toggle kick
//	h         toggle hi-hat
//	n         toggle normalisation
//	m         toggle mute
//	s         print status
//	?         print key bindings
//	q         quit
//
// The Terminal type puts a terminal into cbreak mode so that keys are read as
// soon as they are pressed. The Console type does not require a terminal and
// will read keys from any io.Reader.
package console
