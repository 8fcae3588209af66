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

package sink

// Chunker splits requests for audio into blocks of at most BlockSize frames.
// Devices that ask for a variable number of frames will still cause the
// Renderer to produce blocks of a predictable size.
type Chunker struct {
	Renderer  Renderer
	BlockSize int
}

// Render implements the Renderer interface.
func (c *Chunker) Render(out []float32) {
	if c.BlockSize <= 0 {
		c.Renderer.Render(out)
		return
	}
	for len(out) > 0 {
		n := min(len(out), c.BlockSize)
		c.Renderer.Render(out[:n])
		out = out[n:]
	}
}
