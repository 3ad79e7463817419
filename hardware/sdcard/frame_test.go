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

package sdcard_test

import (
	"testing"

	"github.com/jetsetilly/nanosim/hardware/sdcard"
	"github.com/jetsetilly/nanosim/test"
)

func TestFrame(t *testing.T) {
	f := sdcard.CommandFrame(0, 0)
	test.ExpectEquality(t, uint64(f), 0x400000000095)
	test.ExpectSuccess(t, f.Framed())
	test.ExpectSuccess(t, f.CRCOK())

	f = sdcard.CommandFrame(8, 0x1aa)
	test.ExpectEquality(t, uint64(f), 0x48000001aa87)
	test.ExpectEquality(t, f.Index(), 8)
	test.ExpectEquality(t, f.Arg(), 0x1aa)
	test.ExpectEquality(t, f.Leading(), 0x48)
	test.ExpectEquality(t, f.String(), "CMD8 arg=000001aa crc=43")

	// responses have the transmission bit clear and so are not valid command
	// frames
	r := sdcard.ResponseFrame(sdcard.SelectCard, 0)
	test.ExpectFailure(t, r.Framed())
	test.ExpectSuccess(t, r.CRCOK())
	test.ExpectEquality(t, r.Index(), sdcard.SelectCard)
}

func TestFrameRoundTrip(t *testing.T) {
	for _, index := range []uint8{0, 2, 17, 24, 41, 55, 63} {
		for _, arg := range []uint32{0, 1, 0x02000005, 0x80000000, 0xffffffff} {
			f := sdcard.CommandFrame(index, arg)
			g := sdcard.Frame(uint64(f))
			test.ExpectSuccess(t, g.Framed(), index, arg)
			test.ExpectSuccess(t, g.CRCOK(), index, arg)
			test.ExpectEquality(t, g.Index(), index, index, arg)
			test.ExpectEquality(t, g.Arg(), arg, index, arg)

			// corrupting any bit of the argument or CRC is detected
			for bit := 1; bit < 40; bit++ {
				h := f ^ sdcard.Frame(1<<bit)
				test.ExpectFailure(t, h.CRCOK(), index, arg, bit)
			}
		}
	}
}
