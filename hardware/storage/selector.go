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

package storage

import "math/bits"

// NumDrives is the number of disk image slots.
const NumDrives = 4

// SectorSize is the size in bytes of a single block.
const SectorSize = 512

// Split a block argument into the device selector and the block number.
func Split(arg uint32) (selector uint8, block uint32) {
	return uint8(arg >> 24), arg & 0x00ffffff
}

// lowest returns the number of the lowest set bit in the selector. the
// second return value is the number of bits set.
func lowest(selector uint8) (int, int) {
	return bits.TrailingZeros8(selector), bits.OnesCount8(selector)
}
