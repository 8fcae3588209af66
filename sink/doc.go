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

// Package sink defines the boundary between the synth and the audio device.
//
// The synth knows nothing about audio devices. It implements the Renderer
// interface and a Sink calls Render() from whichever goroutine the device
// library uses for audio. Some libraries call a function when they need more
// audio (a pull model) and some must be given audio when there is space for it
// (a push model). Either way the Renderer sees a single goroutine asking for
// blocks of audio.
//
// Implementations of Sink are in sub-packages and register themselves with
// Register() when they are imported. The application chooses a sink by name
// with Open().
//
// The pcm sub-package contains the sample format conversions needed by
// devices that do not accept float32 samples.
package sink
