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

// Package modalflag wraps the flag package in the standard library and adds
// program modes. Each mode has its own set of flags.
//
// A Modes instance is given the argument list once, with NewArgs(). Parse()
// then consumes the flags for the current mode and, if sub-modes have been
// added, the name of the selected sub-mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("play", "performance", "version")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		rate := md.AddInt("rate", 44100, "sample rate")
//		...
//	}
//
// The first sub-mode is the default and is selected when the next argument
// does not name a sub-mode. Mode names are case insensitive and are reported
// in upper case.
//
// Help is printed automatically to the Output writer when the -help flag is
// encountered. The help lists the flags and sub-modes for the current mode.
package modalflag
