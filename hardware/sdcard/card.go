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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jetsetilly/nanosim/environment"
	"github.com/jetsetilly/nanosim/hardware/signals"
	"github.com/jetsetilly/nanosim/hardware/storage"
	"github.com/jetsetilly/nanosim/logger"
)

// Card is the emulated SD card.
type Card struct {
	env    *environment.Environment
	router *storage.Router

	clk signals.Trace

	cmd command
	dat data

	// the state of the lines driven by the card
	out signals.SDOut

	// the most recent response frame. the field is not cleared when the
	// response has been sent
	Response Frame

	Stats Stats
}

// NewCard is the preferred method of initialisation for the Card type.
func NewCard(env *environment.Environment, router *storage.Router) *Card {
	c := &Card{
		env:    env,
		router: router,
		clk:    signals.NewTrace(),
	}
	c.Reset()
	return c
}

// Reset the card to the power on state.
func (c *Card) Reset() {
	c.cmd.reset()
	c.dat.reset()
	c.out = signals.SDOut{
		Cmd: true,
		Dat: datIdle,
	}
	c.Response = 0
}

func (c *Card) String() string {
	return fmt.Sprintf("sdcard: cmd %s, data %s", c.cmd.State, c.dat.State)
}

// CommandState returns the current state of the command line.
func (c *Card) CommandState() CommandState {
	return c.cmd.State
}

// DataState returns the current state of the data lines.
func (c *Card) DataState() DataState {
	return c.dat.State
}

// Step the card. The card only reacts to a rising edge of the SD clock but
// Step() should be called whenever the state of the bus might have changed.
// The returned value is the state of the lines driven by the card.
func (c *Card) Step(in signals.SD) signals.SDOut {
	c.clk.Tick(in.Clk)
	if !c.clk.Rising() {
		return c.out
	}

	f := c.cmd.shift(in.Cmd)
	c.stepData(in.Dat)
	c.out.Cmd = c.cmd.drive()

	if f.Framed() {
		c.dispatch(f)
	}

	return c.out
}

// dump data to the log as a hex dump. one log entry per line.
func (c *Card) dump(data []byte) {
	for _, l := range strings.Split(strings.TrimSuffix(hex.Dump(data), "\n"), "\n") {
		logger.Log(c.env, "sdcard", l)
	}
}

// diff logs the number of bytes in the written block that differ from the
// block on disk, along with the offset of the first difference.
func (c *Card) diff(data []byte, ref []byte) {
	var n int
	first := -1
	for i := range data {
		if data[i] != ref[i] {
			if first == -1 {
				first = i
			}
			n++
		}
	}

	if n == 0 {
		logger.Logf(c.env, "sdcard", "block %d is unchanged", c.dat.block)
		return
	}

	logger.Logf(c.env, "sdcard", "block %d differs from image in %d bytes. first difference at %#04x", c.dat.block, n, first)

	// dump the line containing the first difference
	start := first &^ 0x0f
	end := min(start+16, len(data))
	logger.Logf(c.env, "sdcard", "%04x: % x", start, data[start:end])
}
