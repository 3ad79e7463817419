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

// Package hardware is the base package for the simulated hardware that
// surrounds the memory and storage controller under test. The Session type
// owns every simulated component and is the single point of entry for the
// external driver.
//
// The driver calls Session.Tick() once per half-cycle of the main clock with
// the state of every signal driven by the controller. The session reacts on
// the rising edge of the main clock by stepping, in order:
//
//	the disk image mount sequencer (see storage.Mounter)
//	the SD card (see sdcard.Card)
//	the memory verifier (see memory.Verifier)
//
// Nothing in the session returns an error once it has been created. Problems
// are written to the log and counted in the Diagnostics type.
package hardware
