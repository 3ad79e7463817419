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

// Memory is implemented by both memory models. Addresses are 16-bit word
// addresses.
type Memory interface {
	Read(addr uint32) uint16

	// Write data to address. Only the bytes selected by sel are written: bit
	// 1 selects the high byte and bit 0 selects the low byte.
	Write(addr uint32, data uint16, sel uint8)
}

// the byte select bits.
const (
	SelectLow  = 0b01
	SelectHigh = 0b10
	SelectWord = SelectHigh | SelectLow
)

// merge data into word according to the byte select bits.
func merge(word uint16, data uint16, sel uint8) uint16 {
	if sel&SelectHigh == SelectHigh {
		word = (word & 0x00ff) | (data & 0xff00)
	}
	if sel&SelectLow == SelectLow {
		word = (word & 0xff00) | (data & 0x00ff)
	}
	return word
}
