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

package storage

import "fmt"

// geometry of a double sided 800K floppy disk. the number of sectors per
// track depends on the speed zone of the track
const (
	floppyTracks       = 80
	floppySides        = 2
	floppyZoneTracks   = 16
	floppyBlocks       = 1600
	floppyZoneSectors0 = 12
)

// chs is the location of a block on a floppy disk.
type chs struct {
	track  int
	side   int
	sector int
}

// floppyMap translates block numbers to track/side/sector. sides are
// interleaved, ie. both sides of a track come before the next track
var floppyMap [floppyBlocks]chs

func init() {
	block := 0
	for track := 0; track < floppyTracks; track++ {
		spt := floppyZoneSectors0 - track/floppyZoneTracks
		for side := 0; side < floppySides; side++ {
			for sector := 0; sector < spt; sector++ {
				floppyMap[block] = chs{track: track, side: side, sector: sector}
				block++
			}
		}
	}
}

// Describe returns a short description of the block location. Blocks on the
// floppy drives are described in terms of track/side/sector. Blocks on other
// drives have no description and the empty string is returned.
func Describe(drive int, block uint32) string {
	if drive < 0 || drive > 1 {
		return ""
	}
	if block >= floppyBlocks {
		return fmt.Sprintf("<out of range %d>", block)
	}
	l := floppyMap[block]
	return fmt.Sprintf("CHS %d/%d/%d", l.track, l.side, l.sector)
}
