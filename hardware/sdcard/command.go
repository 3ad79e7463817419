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
	"github.com/jetsetilly/nanosim/hardware/storage"
	"github.com/jetsetilly/nanosim/logger"
)

// List of command indexes recognised by the card.
const (
	GoIdleState      = 0
	AllSendCID       = 2
	SendRelativeAddr = 3
	SetBusWidth      = 6
	SelectCard       = 7
	SendIfCond       = 8
	SetBlockLen      = 16
	ReadSingleBlock  = 17
	WriteBlock       = 24
	SendOpCond       = 41
	AppCmd           = 55
)

// the index used in the response to SD_SEND_OP_COND (an R3 response).
const ocrResponse = 0x3f

// CommandState records what the card is driving on the command line.
type CommandState int

// List of valid CommandState values.
const (
	CommandIdle CommandState = iota
	CommandResponse
	CommandCID
)

func (s CommandState) String() string {
	switch s {
	case CommandIdle:
		return "idle"
	case CommandResponse:
		return "response"
	case CommandCID:
		return "cid"
	}
	return "unknown"
}

// command is the command line side of the card.
type command struct {
	// the most recent 48 bits received on the command line. bit 0 is the
	// most recent bit
	window uint64

	State CommandState

	// the response being sent. bits are sent from bit 47
	response Frame
	bits     int

	// the next bit of the CID to be sent. bits are sent MSB first from
	// CID[0]
	cidBit int

	// the previous command was APP_CMD
	appCmd bool
}

func (cmd *command) reset() {
	cmd.window = frameMask
	cmd.State = CommandIdle
	cmd.bits = 0
	cmd.cidBit = 0
	cmd.appCmd = false
}

// shift the command line into the window. returns the new window value.
func (cmd *command) shift(v bool) Frame {
	cmd.window <<= 1
	if v {
		cmd.window |= 0x01
	}
	cmd.window &= frameMask
	return Frame(cmd.window)
}

// drive returns the next bit to be driven on the command line. when there is
// nothing to send the line is held high.
func (cmd *command) drive() bool {
	switch cmd.State {
	case CommandResponse:
		v := cmd.response&(1<<(FrameBits-1)) != 0
		cmd.response <<= 1
		cmd.bits--
		if cmd.bits == 0 {
			cmd.State = CommandIdle
		}
		return v
	case CommandCID:
		b := CID[cmd.cidBit/8]
		v := b&(0x80>>(cmd.cidBit%8)) != 0
		cmd.cidBit++
		if cmd.cidBit >= CIDLength*8 {
			cmd.State = CommandIdle
		}
		return v
	}
	return true
}

// respond arms a response. it will start being driven on the next edge.
func (c *Card) respond(index uint8, arg uint32) {
	c.Response = ResponseFrame(index, arg)
	c.cmd.response = c.Response
	c.cmd.bits = FrameBits
	c.cmd.State = CommandResponse
}

// dispatch a received frame. the frame has already passed the framing test.
func (c *Card) dispatch(f Frame) {
	if !f.CRCOK() {
		logger.Logf(c.env, "sdcard", "CMD %02x, ARG %08x, CRC7 %02x != %02x. crc error", f.Leading(), f.Arg(), f.CRC(), NewFrame(f.Leading(), f.Arg()).CRC())
		c.Stats.CommandCRCErrors++
		c.cmd.window = frameMask
		return
	}

	c.Stats.Commands++

	prefix := ""
	if c.cmd.appCmd {
		prefix = "A"
	}
	logger.Logf(c.env, "sdcard", "%sCMD %2d, ARG %08x", prefix, f.Index(), f.Arg())

	arg := f.Arg()

	switch f.Index() {
	case GoIdleState:
	case SendIfCond:
		c.respond(SendIfCond, arg)
	case AppCmd:
		c.respond(AppCmd, 0)
	case SendOpCond:
		c.respond(ocrResponse, OCR)
	case AllSendCID:
		c.cmd.cidBit = 0
		c.cmd.State = CommandCID
	case SendRelativeAddr:
		c.respond(SendRelativeAddr, RCA<<16)
	case SelectCard:
		c.respond(SelectCard, 0)
	case SetBusWidth:
		logger.Logf(c.env, "sdcard", "set bus width to %d", arg)
		c.respond(SetBusWidth, 0)
	case SetBlockLen:
		if arg != storage.SectorSize {
			logger.Logf(c.env, "sdcard", "warning: set block len to %d. only %d is supported", arg, storage.SectorSize)
		} else {
			logger.Logf(c.env, "sdcard", "set block len to %d", arg)
		}
		c.respond(SetBlockLen, 0)
	case ReadSingleBlock:
		c.respond(ReadSingleBlock, 0)
		c.armRead(arg)
	case WriteBlock:
		c.respond(WriteBlock, 0)
		c.armWrite(arg)
	default:
		logger.Logf(c.env, "sdcard", "unexpected command %d", f.Index())
		c.Stats.Unrecognised++
	}

	c.cmd.appCmd = f.Index() == AppCmd
	c.cmd.window = frameMask
}
