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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which has the same signature as
// the Errorf() function in the fmt package.
//
// The pattern used to create the error is remembered, which means that the
// error can be identified later without resorting to string comparison of the
// final message:
//
//	const NoDevice = "sdlsink: no audio device: %v"
//
//	e := curated.Errorf(NoDevice, err)
//	if curated.Is(e, NoDevice) {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of wrapped curated
// errors. IsAny() answers whether an error was created by this package at
// all, which is a useful way of distinguishing expected errors from
// unexpected ones.
//
// The Error() function normalises the message chain by removing adjacent
// duplicate parts. A chain is thought of as parts separated by ": ". So an
// error wrapped twice with the same prefix, for example:
//
//	curated.Errorf("sink: %v", curated.Errorf("sink: %v", "device busy"))
//
// will print as
//
//	sink: device busy
//
// and not as
//
//	sink: sink: device busy
package curated
