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

// Package statsview launches a local HTTP server showing runtime statistics,
// which is useful for watching allocation and garbage collection while the
// synth is rendering. The server is only built in when the statsview build
// tag is present:
//
//	go build -tags statsview .
//
// The statistics are then viewable at:
//
//	localhost:12600/debug/statsview
//
// Without the build tag, Available() returns false and Launch() does nothing.
package statsview
