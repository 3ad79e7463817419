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

// geometry of the SDRAM.
const (
	SDRAMBanks   = 4
	SDRAMRows    = 2048
	SDRAMColumns = 256
	SDRAMCells   = SDRAMBanks * SDRAMRows * SDRAMColumns
)

// position of the address fields in a cell number.
const (
	rowShift  = 8
	bankShift = 19
)

// Location is the position of a 16-bit word in the SDRAM.
type Location struct {
	Bank uint8
	Row  uint16
	Col  uint8

	// the word is in the upper half of the 32-bit cell
	High bool
}

// Locate returns the SDRAM location of a 16-bit word address. Two
// consecutive words share one 32-bit cell, the even word being in the upper
// half.
func Locate(addr uint32) Location {
	cell := (addr >> 1) % SDRAMCells
	return Location{
		Bank: uint8(cell >> bankShift),
		Row:  uint16(cell>>rowShift) & (SDRAMRows - 1),
		Col:  uint8(cell),
		High: addr&0x01 == 0,
	}
}

// LaneMask returns the DQM value needed to write the bytes of addr selected
// by sel. DQM bits are active low, a set bit masks the byte lane.
func LaneMask(addr uint32, sel uint8) uint8 {
	var enable uint8
	if sel&SelectHigh == SelectHigh {
		enable |= 0b0010
	}
	if sel&SelectLow == SelectLow {
		enable |= 0b0001
	}
	if addr&0x01 == 0 {
		enable <<= 2
	}
	return ^enable & 0x0f
}

// SDRAM is a model of a banked memory device with 32-bit cells.
type SDRAM struct {
	cells []uint32

	// the bank and row latched by the most recent ACTIVE command
	bank uint8
	row  uint16

	// the most recent data word returned by a read access
	latched uint32
}

// NewSDRAM is the preferred method of initialisation for the SDRAM type.
func NewSDRAM() *SDRAM {
	return &SDRAM{
		cells: make([]uint32, SDRAMCells),
	}
}

func (m *SDRAM) String() string {
	return fmt.Sprintf("sdram: bank %d row %03x latched %08x", m.bank, m.row, m.latched)
}

// Activate opens a row.
func (m *SDRAM) Activate(bank uint8, row uint16) {
	m.bank = bank & (SDRAMBanks - 1)
	m.row = row & (SDRAMRows - 1)
}

// Access reads or writes a column of the open row. For reads, the data and
// dqm arguments are ignored and the cell value is returned and latched. For
// writes the unmasked byte lanes of data are written and the new cell value
// is returned.
func (m *SDRAM) Access(col uint8, write bool, data uint32, dqm uint8) uint32 {
	c := uint32(m.bank)<<bankShift | uint32(m.row)<<rowShift | uint32(col)

	if !write {
		m.latched = m.cells[c]
		return m.latched
	}

	m.cells[c] = lanes(m.cells[c], data, dqm)
	return m.cells[c]
}

// lanes merges the unmasked byte lanes of data into v.
func lanes(v uint32, data uint32, dqm uint8) uint32 {
	for lane := 0; lane < 4; lane++ {
		if dqm&(0x01<<lane) == 0 {
			mask := uint32(0xff) << (lane * 8)
			v = (v &^ mask) | (data & mask)
		}
	}
	return v
}

// half returns the 16-bit half of v that contains addr.
func half(v uint32, addr uint32) uint16 {
	if addr&0x01 == 0 {
		return uint16(v >> 16)
	}
	return uint16(v)
}

// Latched returns the half of the most recently read data word that
// corresponds to addr.
func (m *SDRAM) Latched(addr uint32) uint16 {
	return half(m.latched, addr)
}

// Read implements the Memory interface. The data is read directly from the
// cell, without disturbing the open row or the latched data.
func (m *SDRAM) Read(addr uint32) uint16 {
	return half(m.cells[(addr>>1)%SDRAMCells], addr)
}

// Write implements the Memory interface. The data is written directly to the
// cell, without disturbing the open row.
func (m *SDRAM) Write(addr uint32, data uint16, sel uint8) {
	c := (addr >> 1) % SDRAMCells
	m.cells[c] = lanes(m.cells[c], uint32(data)<<16|uint32(data), LaneMask(addr, sel))
}
