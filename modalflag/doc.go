// This file is part of nanosim.
//
// nanosim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nanosim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nanosim.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package of the standard library so that a
// command line can be divided into modes, each mode having its own set of
// flags. For example:
//
//	nanosim -prefs "sdcard.persist::true" RUN -memviz state.dot boot.lua
//
// In this example, -prefs is a flag of the top level, RUN is a mode and
// -memviz is a flag of the RUN mode. The remaining argument is available
// through the GetArg() and RemainingArgs() functions.
//
// Arguments are supplied with NewArgs(). Parse() is then called for each
// level of the command line. Between calls to Parse() the caller should call
// NewMode() and register the flags and sub-modes for that level:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE", "TRAILER")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		memviz := md.AddString("memviz", "", "write state of session to file")
//		...
//	}
//
// The first sub-mode is the default mode and is selected if the next argument
// is not a recognised mode. Mode comparisons are case insensitive and Mode()
// always returns the upper case name.
//
// A "-help" flag is handled automatically and results in ParseHelp being
// returned. The help message, listing flags and sub-modes, is written to the
// Output field.
package modalflag
