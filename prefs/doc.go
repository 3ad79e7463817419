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

// Package prefs facilitates the storage of preferential values in the
// program. It supports Bool, Int, Float and String types.
//
// Values are registered with a Disk instance, which handles the saving and
// loading of the values to a file. The file is a simple list of key/value
// pairs, one pair per line and sorted by key:
//
//	sdcard.persist :: false
//	sdcard.readdelay :: 1000
//
// Keys that are not registered with a Disk instance are preserved when the
// file is saved, meaning that more than one Disk instance can share the same
// file.
//
// Values can be overridden for a single run of the program with the command
// line stack. See PushCommandLineStack().
package prefs
