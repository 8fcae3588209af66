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

// Package digest computes a running hash of rendered audio. Two renders that
// produce the same digest produced the same samples, which makes the digest
// useful for checking that the synth is deterministic for a given seed and
// for spotting changes to the output between versions.
//
// The Audio type wraps a sink.Renderer and can be placed between the synth
// and any sink.
package digest

// Digest implementations compute a hash of a stream of data.
type Digest interface {
	Hash() string
	ResetDigest()
}
