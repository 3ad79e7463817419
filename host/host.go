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

package host

import (
	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/hardware/sdcard"
	"github.com/jetsetilly/nanosim/hardware/sdcard/crc"
	"github.com/jetsetilly/nanosim/hardware/signals"
)

// Bus is implemented by the simulated hardware.
type Bus interface {
	Tick(in signals.In) signals.Out
}

// Sentinal errors.
const (
	NoResponse = "host: no response to CMD%d"
	NoData     = "host: no data block after CMD%d"
	NoRelease  = "host: card did not release busy after %d edges"
)

// Default timeouts in SD clock edges.
const (
	DefaultResponseTimeout = 64
	DefaultDataTimeout     = 1 << 16
)

// Host is the controller stand-in.
type Host struct {
	bus Bus

	// current state of the signals driven by the host
	in signals.In

	// most recent state of the signals driven by the hardware
	out signals.Out

	// number of SD clock edges to wait for the start of a response
	ResponseTimeout int

	// number of SD clock edges to wait for a data block or for the end of
	// the busy period
	DataTimeout int

	// data block being received. data lines are captured on every edge so
	// that a block that starts while a response is still being received is
	// not missed
	rx capture

	// number of SD clock edges generated
	Edges uint64
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(bus Bus) *Host {
	h := &Host{
		bus:             bus,
		ResponseTimeout: DefaultResponseTimeout,
		DataTimeout:     DefaultDataTimeout,
	}
	h.in.SD.Cmd = true
	h.in.SD.Dat = 0x0f
	h.in.SDRAM = deselected
	h.out = signals.Idle()
	return h
}

// Out returns the most recent state of the signals driven by the hardware.
func (h *Host) Out() signals.Out {
	return h.out
}

// Cycle runs one cycle of the main clock with the current input signals.
func (h *Host) Cycle() signals.Out {
	h.in.Clk = false
	h.out = h.bus.Tick(h.in)
	h.in.Clk = true
	h.out = h.bus.Tick(h.in)
	return h.out
}

// Cycles runs the main clock for n cycles.
func (h *Host) Cycles(n int) {
	for i := 0; i < n; i++ {
		h.Cycle()
	}
}

// Edge runs one cycle of the SD clock. Returns the state of the lines driven
// by the card after the rising edge.
func (h *Host) Edge() signals.SDOut {
	h.in.SD.Clk = false
	h.Cycle()
	h.in.SD.Clk = true
	h.Cycle()
	h.Edges++
	h.rx.step(h.out.SD.Dat)
	return h.out.SD
}

// Idle runs the SD clock for n cycles with the command and data lines high.
func (h *Host) Idle(n int) {
	h.in.SD.Cmd = true
	h.in.SD.Dat = 0x0f
	for i := 0; i < n; i++ {
		h.Edge()
	}
}

// Send a command frame to the card without waiting for a response.
func (h *Host) Send(index uint8, arg uint32) {
	h.SendFrame(sdcard.CommandFrame(index, arg))
}

// SendFrame sends a frame to the card bit by bit. The frame is sent as is,
// which means a frame with a bad CRC can be sent.
func (h *Host) SendFrame(f sdcard.Frame) {
	for i := sdcard.FrameBits - 1; i >= 0; i-- {
		h.in.SD.Cmd = f&(1<<i) != 0
		h.Edge()
	}
	h.in.SD.Cmd = true
}

// waitStart waits for the card to drive the start bit of a response.
func (h *Host) waitStart() bool {
	for i := 0; i < h.ResponseTimeout; i++ {
		if !h.Edge().Cmd {
			return true
		}
	}
	return false
}

// Command sends a command and receives the 48-bit response. If the card does
// not respond the error will have the NoResponse pattern.
func (h *Host) Command(index uint8, arg uint32) (sdcard.Frame, error) {
	h.Send(index, arg)

	if !h.waitStart() {
		return 0, curated.Errorf(NoResponse, index)
	}

	// start bit has already been received
	var f sdcard.Frame
	for i := 1; i < sdcard.FrameBits; i++ {
		f <<= 1
		if h.Edge().Cmd {
			f |= 0x01
		}
	}

	return f, nil
}

// CID sends the ALL_SEND_CID command and receives the 136-bit response.
func (h *Host) CID() ([sdcard.CIDLength]byte, error) {
	var cid [sdcard.CIDLength]byte

	h.Send(sdcard.AllSendCID, 0)

	if !h.waitStart() {
		return cid, curated.Errorf(NoResponse, sdcard.AllSendCID)
	}

	// start bit is bit 7 of the first byte and is always zero
	for i := 1; i < sdcard.CIDLength*8; i++ {
		if h.Edge().Cmd {
			cid[i/8] |= 0x80 >> (i % 8)
		}
	}

	return cid, nil
}

// ReadBlock reads a single block. The returned slice contains the payload and
// the trailer as received from the card.
func (h *Host) ReadBlock(arg uint32) ([]byte, error) {
	h.rx = capture{active: true}
	defer func() {
		h.rx.active = false
	}()

	_, err := h.Command(sdcard.ReadSingleBlock, arg)
	if err != nil {
		return nil, err
	}

	for i := 0; !h.rx.done(); i++ {
		if i >= h.DataTimeout {
			return nil, curated.Errorf(NoData, sdcard.ReadSingleBlock)
		}
		h.Edge()
	}

	// end bit
	h.Edge()

	b := make([]byte, sdcard.BlockLength)
	copy(b, h.rx.buf[:])
	return b, nil
}

// WriteBlock writes a single block of payload data. If corrupt is true a
// single bit of the trailer is flipped before it is sent.
//
// Returns the number of SD clock edges for which the card held the data lines
// low after the block was sent.
func (h *Host) WriteBlock(arg uint32, payload []byte, corrupt bool) (int, error) {
	_, err := h.Command(sdcard.WriteBlock, arg)
	if err != nil {
		return 0, err
	}

	blk := make([]byte, sdcard.BlockLength)
	copy(blk, payload)
	t := crc.Trailer(blk[:len(blk)-crc.TrailerLength])
	if corrupt {
		t[0] ^= 0x80
	}
	copy(blk[len(blk)-crc.TrailerLength:], t[:])

	h.Idle(2)

	// start bit
	h.in.SD.Dat = 0x00
	h.Edge()

	for _, b := range blk {
		h.in.SD.Dat = b >> 4
		h.Edge()
		h.in.SD.Dat = b & 0x0f
		h.Edge()
	}

	h.in.SD.Dat = 0x0f

	var busy int
	for i := 0; i < h.DataTimeout; i++ {
		if h.Edge().Dat == 0x00 {
			busy++
		} else if busy > 0 {
			return busy, nil
		}
	}

	return busy, curated.Errorf(NoRelease, h.DataTimeout)
}
