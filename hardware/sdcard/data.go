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
	"github.com/jetsetilly/nanosim/hardware/sdcard/crc"
	"github.com/jetsetilly/nanosim/hardware/storage"
	"github.com/jetsetilly/nanosim/logger"
)

// BlockLength is the number of bytes in a data block, including the trailer.
const BlockLength = storage.SectorSize + crc.TrailerLength

// NibblesPerBlock is the number of data line transfers for a single block.
const NibblesPerBlock = BlockLength * 2

// Default number of SD clock edges the card waits between a read command and
// the start bit of the data block.
const DefaultReadDelay = 1000

// Default number of SD clock edges the card signals busy after a write.
const DefaultWriteBusy = 100

// WriteStatusLength is the number of edges the card drives the data lines low
// after receiving a block. This covers the CRC status token and end bit.
const WriteStatusLength = 4

// the state of the data lines when nothing is being driven.
const datIdle = 0x0f

// DataState records what the data lines are being used for.
type DataState int

// List of valid DataState values.
const (
	DataIdle DataState = iota

	// a block has been requested and the card is "fetching" it
	DataReadDelay

	// the next edge will drive the start bit
	DataReadStart

	// payload and trailer being driven onto the data lines
	DataReading

	// the next edge will drive the end bit
	DataReadEnd

	// waiting for the host to drive the start bit
	DataWriteWaitStart

	// payload and trailer being received from the data lines
	DataWriting

	// CRC status being driven
	DataWriteStatus

	// the card is busy committing the block
	DataWriteBusy
)

func (s DataState) String() string {
	switch s {
	case DataIdle:
		return "idle"
	case DataReadDelay:
		return "read delay"
	case DataReadStart:
		return "read start"
	case DataReading:
		return "reading"
	case DataReadEnd:
		return "read end"
	case DataWriteWaitStart:
		return "write wait"
	case DataWriting:
		return "writing"
	case DataWriteStatus:
		return "write status"
	case DataWriteBusy:
		return "write busy"
	}
	return "unknown"
}

// data is the data line side of the card.
type data struct {
	State DataState

	// payload followed by the trailer
	buf [BlockLength]byte

	// the next nibble to be transferred. even nibbles are the high nibble
	// of a byte
	nibble int

	// countdown for the ReadDelay, WriteStatus and WriteBusy states
	countdown int

	// the block argument of the block being written
	drive int
	block uint32

	// whether the trailer of the written block was correct
	trailerOK bool
}

func (dat *data) reset() {
	dat.State = DataIdle
	dat.nibble = 0
	dat.countdown = 0
}

// nextNibble returns the next nibble from the buffer.
func (dat *data) nextNibble() uint8 {
	b := dat.buf[dat.nibble/2]
	if dat.nibble&0x01 == 0 {
		b >>= 4
	}
	dat.nibble++
	return b & 0x0f
}

// putNibble puts the next nibble into the buffer.
func (dat *data) putNibble(v uint8) {
	i := dat.nibble / 2
	if dat.nibble&0x01 == 0 {
		dat.buf[i] = (dat.buf[i] & 0x0f) | (v << 4)
	} else {
		dat.buf[i] = (dat.buf[i] & 0xf0) | (v & 0x0f)
	}
	dat.nibble++
}

// route the block argument to a drive and block number.
func (c *Card) route(arg uint32) (int, uint32) {
	sel, block := storage.Split(arg)
	drive, ok := c.router.Resolve(sel)
	if !ok {
		return -1, block
	}
	return drive, block
}

// armRead fetches the requested block and prepares the data channel.
func (c *Card) armRead(arg uint32) {
	drive, block := c.route(arg)

	logger.Logf(c.env, "sdcard", "request #%d to read single block %d %s", drive, block, storage.Describe(drive, block))

	if c.router.Bound(drive) {
		c.router.ReadSector(drive, block, c.dat.buf[:storage.SectorSize])
		c.dump(c.dat.buf[:32])
	} else {
		logger.Log(c.env, "sdcard", "no image loaded. sending empty data")
		clear(c.dat.buf[:storage.SectorSize])
	}

	t := crc.Trailer(c.dat.buf[:storage.SectorSize])
	copy(c.dat.buf[storage.SectorSize:], t[:])

	c.dat.nibble = 0
	c.dat.countdown = c.env.Prefs.ReadDelay.Get().(int)
	if c.dat.countdown > 0 {
		c.dat.State = DataReadDelay
	} else {
		c.dat.State = DataReadStart
	}

	c.Stats.BlocksRead++
}

// armWrite prepares the data channel for receiving a block.
func (c *Card) armWrite(arg uint32) {
	c.dat.drive, c.dat.block = c.route(arg)

	logger.Logf(c.env, "sdcard", "request #%d to write single block %d %s", c.dat.drive, c.dat.block, storage.Describe(c.dat.drive, c.dat.block))

	c.dat.nibble = 0
	c.dat.State = DataWriteWaitStart
}

// stepData advances the data channel by one SD clock edge. the dat argument
// is the state of the data lines as driven by the host.
func (c *Card) stepData(dat uint8) {
	switch c.dat.State {
	case DataIdle:

	case DataReadDelay:
		c.out.Dat = datIdle
		c.dat.countdown--
		if c.dat.countdown <= 0 {
			c.dat.State = DataReadStart
		}

	case DataReadStart:
		c.out.Dat = 0x00
		c.dat.State = DataReading

	case DataReading:
		c.out.Dat = c.dat.nextNibble()
		if c.dat.nibble >= NibblesPerBlock {
			c.dat.State = DataReadEnd
		}

	case DataReadEnd:
		c.out.Dat = datIdle
		c.dat.State = DataIdle

	case DataWriteWaitStart:
		if dat&0x0f != datIdle {
			c.dat.State = DataWriting
		}

	case DataWriting:
		c.dat.putNibble(dat & 0x0f)
		if c.dat.nibble >= NibblesPerBlock {
			c.dat.countdown = WriteStatusLength
			c.dat.State = DataWriteStatus
		}

	case DataWriteStatus:
		if c.dat.countdown > 0 {
			c.out.Dat = 0x00
			c.dat.countdown--
			break
		}

		// the block has been fully received. the data lines continue to be
		// driven low until the busy period ends
		c.checkWrite()
		c.dat.countdown = c.env.Prefs.WriteBusy.Get().(int)
		c.dat.State = DataWriteBusy
		if c.dat.countdown <= 0 {
			c.releaseWrite()
		}

	case DataWriteBusy:
		c.dat.countdown--
		if c.dat.countdown > 0 {
			c.out.Dat = 0x00
		} else {
			c.releaseWrite()
		}
	}
}

// checkWrite compares the received trailer with the payload and compares
// the payload with the block currently on the disk image.
func (c *Card) checkWrite() {
	c.Stats.BlocksWritten++

	payload := c.dat.buf[:storage.SectorSize]

	var received [crc.TrailerLength]byte
	copy(received[:], c.dat.buf[storage.SectorSize:])

	err := crc.Verify(payload, received)
	if err != nil {
		expected := crc.Trailer(payload)
		logger.Logf(c.env, "sdcard", "%v. received % x expected % x", err, received, expected)
		c.Stats.DataCRCErrors++
		c.dat.trailerOK = false
	} else {
		logger.Logf(c.env, "sdcard", "crc ok: % x", received)
		c.dat.trailerOK = true
	}

	if c.router.Bound(c.dat.drive) {
		var ref [storage.SectorSize]byte
		c.router.ReadSector(c.dat.drive, c.dat.block, ref[:])
		c.diff(payload, ref[:])
	} else {
		c.dump(payload[:32])
	}
}

// releaseWrite ends the busy period and persists the block.
func (c *Card) releaseWrite() {
	c.out.Dat = datIdle
	c.dat.State = DataIdle

	if !c.dat.trailerOK {
		logger.Logf(c.env, "sdcard", "block %d not persisted because of crc error", c.dat.block)
		return
	}

	if c.router.WriteSector(c.dat.drive, c.dat.block, c.dat.buf[:storage.SectorSize]) {
		c.Stats.Persisted++
	}
}
