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

package crc

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/nanosim/curated"
)

// NumLanes is the number of data lines in 4-bit mode.
const NumLanes = 4

// TrailerLength is the number of bytes following the payload of a data
// block.
const TrailerLength = 8

// Sentinal error returned by Verify().
const TrailerMismatch = "crc: trailer mismatch on lanes %s"

// Lanes returns the CRC16 of each data line. Every byte of the payload puts
// two bits on each line: line n carries bit 4+n followed by bit n. Four
// payload bytes therefore give one input byte for each of the line CRCs.
//
// The length of the payload should be a multiple of four.
func Lanes(payload []byte) [NumLanes]uint16 {
	var lanes [NumLanes]uint16
	var bits [NumLanes]uint8

	for i, b := range payload {
		for c := 0; c < NumLanes; c++ {
			bits[c] <<= 2
			if b&(0x10<<c) != 0 {
				bits[c] |= 0x02
			}
			if b&(0x01<<c) != 0 {
				bits[c] |= 0x01
			}
			if i&0x03 == 0x03 {
				lanes[c] = CRC16(lanes[c], bits[c])
				bits[c] = 0
			}
		}
	}

	return lanes
}

// Serialise the lane CRCs in the order they appear on the data lines. The
// CRCs are sent most significant bit first, four lines at a time, with line
// n in bit n of each nibble. The first nibble goes in the high nibble of the
// first byte.
func Serialise(lanes [NumLanes]uint16) [TrailerLength]byte {
	var t [TrailerLength]byte
	for i := 0; i < 16; i++ {
		var nibble uint8
		for c := 0; c < NumLanes; c++ {
			if lanes[c]&(0x8000>>i) != 0 {
				nibble |= 0x01 << c
			}
		}
		if i&0x01 == 0x01 {
			t[i/2] |= nibble
		} else {
			t[i/2] |= nibble << 4
		}
	}
	return t
}

// DecodeTrailer is the inverse of Serialise().
func DecodeTrailer(t [TrailerLength]byte) [NumLanes]uint16 {
	var lanes [NumLanes]uint16
	for i := 0; i < 16; i++ {
		nibble := t[i/2] >> 4
		if i&0x01 == 0x01 {
			nibble = t[i/2] & 0x0f
		}
		for c := 0; c < NumLanes; c++ {
			if nibble&(0x01<<c) != 0 {
				lanes[c] |= 0x8000 >> i
			}
		}
	}
	return lanes
}

// Trailer returns the eight byte trailer for the payload.
func Trailer(payload []byte) [TrailerLength]byte {
	return Serialise(Lanes(payload))
}

// BadLanes returns the list of data lines for which the trailer does not
// match the payload. The list is empty if the trailer is correct.
func BadLanes(payload []byte, trailer [TrailerLength]byte) []int {
	expected := Lanes(payload)
	received := DecodeTrailer(trailer)

	var bad []int
	for c := range expected {
		if expected[c] != received[c] {
			bad = append(bad, c)
		}
	}
	return bad
}

// Verify returns an error if the trailer does not match the payload. The
// error uses the TrailerMismatch pattern.
func Verify(payload []byte, trailer [TrailerLength]byte) error {
	bad := BadLanes(payload, trailer)
	if len(bad) == 0 {
		return nil
	}

	s := make([]string, len(bad))
	for i, c := range bad {
		s[i] = fmt.Sprintf("%d", c)
	}
	return curated.Errorf(TrailerMismatch, strings.Join(s, ","))
}
