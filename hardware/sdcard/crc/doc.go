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

// Package crc implements the checksums used by the SD card native protocol.
//
// Command and response frames are protected by a 7-bit CRC (generator 0x89,
// ie. x^7 + x^3 + 1). Data blocks are protected by one CRC16-CCITT per data
// line, which are sent after the payload as an eight byte trailer.
//
// The running CRC7 value returned by CRC7() holds the checksum in bits 7..1,
// which is the position it occupies in a frame. Bit 0 of the running value is
// always zero. The CommandCRC() and BytesCRC() functions return the same
// value, suitable for OR'ing directly into the low byte of a frame.
package crc
