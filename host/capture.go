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

import "github.com/jetsetilly/nanosim/hardware/sdcard"

// capture receives a data block from the data lines.
type capture struct {
	active  bool
	started bool
	nibbles int
	buf     [sdcard.BlockLength]byte
}

func (c *capture) done() bool {
	return c.nibbles >= sdcard.NibblesPerBlock
}

// step is called after every SD clock edge with the state of the data lines.
func (c *capture) step(dat uint8) {
	if !c.active || c.done() {
		return
	}

	if !c.started {
		c.started = dat&0x0f == 0x00
		return
	}

	i := c.nibbles / 2
	if c.nibbles&0x01 == 0 {
		c.buf[i] = dat << 4
	} else {
		c.buf[i] |= dat & 0x0f
	}
	c.nibbles++
}
