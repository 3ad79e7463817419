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

import "fmt"

// Stats records what the card has been asked to do.
type Stats struct {
	// commands with a valid CRC
	Commands int

	// commands that failed the CRC check
	CommandCRCErrors int

	// commands with a valid CRC but an index the card does not recognise
	Unrecognised int

	BlocksRead    int
	BlocksWritten int

	// written blocks where the received trailer did not match the payload
	DataCRCErrors int

	// written blocks that have been passed to the storage router for
	// persisting
	Persisted int
}

func (s Stats) String() string {
	return fmt.Sprintf("cmds=%d (crc errors=%d, unrecognised=%d) reads=%d writes=%d (crc errors=%d, persisted=%d)",
		s.Commands, s.CommandCRCErrors, s.Unrecognised,
		s.BlocksRead, s.BlocksWritten, s.DataCRCErrors, s.Persisted)
}
