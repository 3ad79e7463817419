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

// SRAMWords is the number of 16-bit words in the flat memory. Each SDRAM cell
// holds two words so both models cover the same address space.
const SRAMWords = SDRAMCells * 2

// SRAM is a flat memory of 16-bit words.
type SRAM struct {
	words []uint16
}

// NewSRAM is the preferred method of initialisation for the SRAM type.
func NewSRAM() *SRAM {
	return &SRAM{
		words: make([]uint16, SRAMWords),
	}
}

func (m *SRAM) String() string {
	return fmt.Sprintf("sram: %d words", len(m.words))
}

// Read implements the Memory interface.
func (m *SRAM) Read(addr uint32) uint16 {
	return m.words[addr%SRAMWords]
}

// Write implements the Memory interface.
func (m *SRAM) Write(addr uint32, data uint16, sel uint8) {
	a := addr % SRAMWords
	m.words[a] = merge(m.words[a], data, sel)
}
