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

// Package storage maps block requests from the SD card onto disk image
// files.
//
// There is no companion processor in the simulation to translate the devices
// of the target machine onto a single SD card. Instead, the host puts the
// target device into the upper eight bits of the block argument. Each bit of
// the selector is one drive:
//
//	bit 0: internal floppy
//	bit 1: external floppy
//	bit 2: first hard disk
//	bit 3: second hard disk
//
// The lower 24 bits are the block number in units of SectorSize bytes.
//
// A drive with no image file bound to it reads as zero-filled sectors and
// drops writes. Writes to a bound image only reach the file if the
// sdcard.persist preference is set.
package storage
