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

// Package sdcard emulates an SD card in native 4-bit mode, as seen from the
// bus. It answers the command frames needed to initialise a card and to read
// and write single blocks.
//
// The card reacts only to rising edges of the SD clock. On every rising edge
// the card:
//
//  1. shifts the command line into the 48-bit command window
//  2. steps the data channel (see DataState)
//  3. drives the next bit of any pending response onto the command line
//  4. decodes and dispatches the command window if it holds a valid frame
//
// Because dispatch is the last thing to happen, a response or a data
// transfer always starts on the edge after the command was received.
//
// Blocks are read from and written to disk images through the storage
// package. The target drive is selected by the upper eight bits of the block
// argument.
package sdcard
