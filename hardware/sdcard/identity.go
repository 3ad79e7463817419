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

package sdcard

import "github.com/jetsetilly/nanosim/hardware/sdcard/crc"

// OCR is the operating conditions register returned in response to
// SD_SEND_OP_COND. The card is not busy, is a high capacity card and supports
// all voltages.
const OCR = 0xc0ff8000

// RCA is the relative card address returned in response to
// SEND_RELATIVE_ADDR.
const RCA = 0x0013

// CIDLength is the number of bytes in the response to ALL_SEND_CID.
const CIDLength = 17

// CID is the card identification response. The final byte is the CRC7 of the
// preceding bytes with the stop bit set.
var CID = [CIDLength]byte{
	0x3f, 0x02, 'T', 'M', 'S', 'A', '0', '8', 'G', 0x14, 0x39, 0x4a, 0x67, 0xc7, 0x00, 0xe4,
}

func init() {
	CID[CIDLength-1] = crc.BytesCRC(CID[:CIDLength-1]) | 0x01
}
