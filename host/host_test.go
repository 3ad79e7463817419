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

package host_test

import (
	"testing"

	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/hardware/sdcard"
	"github.com/jetsetilly/nanosim/hardware/signals"
	"github.com/jetsetilly/nanosim/host"
	"github.com/jetsetilly/nanosim/test"
)

// silentBus never drives anything and records the command line as seen on
// rising edges of the SD clock.
type silentBus struct {
	ticks int
	sdclk signals.Trace
	cmd   sdcard.Frame
	bits  int
}

func (b *silentBus) Tick(in signals.In) signals.Out {
	b.ticks++
	if in.Clk {
		b.sdclk.Tick(in.SD.Clk)
		if b.sdclk.Rising() && b.bits < sdcard.FrameBits {
			b.cmd <<= 1
			if in.SD.Cmd {
				b.cmd |= 1
			}
			b.bits++
		}
	}
	return signals.Idle()
}

func TestTiming(t *testing.T) {
	b := &silentBus{}
	h := host.NewHost(b)

	h.Cycle()
	test.ExpectEquality(t, b.ticks, 2)

	h.Edge()
	test.ExpectEquality(t, b.ticks, 6)
	test.ExpectEquality(t, h.Edges, uint64(1))
}

func TestSendFrame(t *testing.T) {
	b := &silentBus{}
	h := host.NewHost(b)

	h.Send(sdcard.SendIfCond, 0x1aa)
	test.ExpectEquality(t, b.bits, sdcard.FrameBits)
	test.ExpectEquality(t, b.cmd, sdcard.CommandFrame(sdcard.SendIfCond, 0x1aa))
	test.ExpectSuccess(t, b.cmd.CRCOK())
}

func TestNoResponse(t *testing.T) {
	h := host.NewHost(&silentBus{})
	h.ResponseTimeout = 10

	_, err := h.Command(sdcard.GoIdleState, 0)
	test.ExpectSuccess(t, curated.Is(err, host.NoResponse))
	test.ExpectEquality(t, err.Error(), "host: no response to CMD0")
	test.ExpectEquality(t, h.Edges, uint64(sdcard.FrameBits+10))
}
