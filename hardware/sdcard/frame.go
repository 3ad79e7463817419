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

import (
	"fmt"

	"github.com/jetsetilly/nanosim/hardware/sdcard/crc"
)

// FrameBits is the number of bits in a command or response frame.
const FrameBits = 48

const frameMask = (1 << FrameBits) - 1

// Frame is a 48-bit command or response frame:
//
//	bit 47      start bit (always 0)
//	bit 46      transmission bit (1 for host commands, 0 for responses)
//	bits 45..40 command index
//	bits 39..8  argument
//	bits 7..1   CRC7
//	bit 0       stop bit (always 1)
type Frame uint64

// NewFrame creates a frame from the leading byte and the argument. The CRC7
// and stop bit are added.
func NewFrame(leading uint8, arg uint32) Frame {
	f := uint64(leading)<<40 | uint64(arg)<<8
	f |= uint64(crc.CommandCRC(leading, arg))
	f |= 0x01
	return Frame(f)
}

// CommandFrame creates a host command frame for the command index.
func CommandFrame(index uint8, arg uint32) Frame {
	return NewFrame(0x40|(index&0x3f), arg)
}

// ResponseFrame creates a card response frame for the index.
func ResponseFrame(index uint8, arg uint32) Frame {
	return NewFrame(index&0x3f, arg)
}

// Framed returns true if the start, transmission and stop bits are in the
// correct state for a command sent by the host.
func (f Frame) Framed() bool {
	return f&(1<<47) == 0 && f&(1<<46) != 0 && f&0x01 == 0x01
}

// Leading returns the first byte of the frame.
func (f Frame) Leading() uint8 {
	return uint8(f >> 40)
}

// Index returns the command index.
func (f Frame) Index() uint8 {
	return uint8(f>>40) & 0x3f
}

// Arg returns the 32-bit argument.
func (f Frame) Arg() uint32 {
	return uint32(f >> 8)
}

// CRC returns the CRC7 field in bits 7..1.
func (f Frame) CRC() uint8 {
	return uint8(f) & 0xfe
}

// CRCOK returns true if the CRC7 field matches the rest of the frame.
func (f Frame) CRCOK() bool {
	return f.CRC() == crc.CommandCRC(f.Leading(), f.Arg())
}

func (f Frame) String() string {
	return fmt.Sprintf("CMD%d arg=%08x crc=%02x", f.Index(), f.Arg(), f.CRC()>>1)
}
