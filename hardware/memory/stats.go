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

package memory

import "fmt"

// Stats records the activity of the memory verifier.
type Stats struct {
	// SDRAM commands
	Activates   int
	SDRAMReads  int
	SDRAMWrites int

	// SRAM accesses compared against the SDRAM
	Reads  int
	Writes int

	ReadMismatches  int
	WriteMismatches int

	// SDRAM returned data in a cycle where the SRAM was not read
	Unmatched int
}

// Mismatches returns the total number of mismatches.
func (s Stats) Mismatches() int {
	return s.ReadMismatches + s.WriteMismatches
}

func (s Stats) String() string {
	return fmt.Sprintf("reads=%d writes=%d mismatches=%d (read=%d, write=%d) unmatched=%d",
		s.Reads, s.Writes, s.Mismatches(), s.ReadMismatches, s.WriteMismatches, s.Unmatched)
}
