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

import (
	"github.com/jetsetilly/nanosim/hardware/memory"
	"github.com/jetsetilly/nanosim/hardware/signals"
)

// the memory cycle phases used by the host.
const (
	phaseIdle   = 0
	phaseSelect = 2
	phaseAccess = 6
)

var deselected = signals.SDRAM{CSn: true, RASn: true, CASn: true, WEn: true}

// MemWrite writes a 16-bit word. The write is made to the SDRAM first, in the
// way the memory controller would, and then to the flat memory in the way
// the CPU would.
func (h *Host) MemWrite(addr uint32, data uint16, sel uint8) {
	h.access(addr, true, data, sel)
}

// MemRead reads a 16-bit word. Returns the value read from the flat memory.
func (h *Host) MemRead(addr uint32) uint16 {
	return h.access(addr, false, 0, 0)
}

func (h *Host) access(addr uint32, write bool, data uint16, sel uint8) uint16 {
	l := memory.Locate(addr)

	// ACTIVE
	h.in.SDRAM = signals.SDRAM{
		RASn: false,
		CASn: true,
		WEn:  true,
		BA:   l.Bank,
		Addr: l.Row,
	}
	h.Cycle()

	// READ or WRITE
	h.in.SDRAM = signals.SDRAM{
		RASn: true,
		CASn: false,
		WEn:  !write,
		Addr: uint16(l.Col),
	}
	if write {
		h.in.SDRAM.Data = uint32(data)<<16 | uint32(data)
		h.in.SDRAM.DQM = memory.LaneMask(addr, sel)
	}
	h.Cycle()

	h.in.SDRAM = deselected

	h.in.RAM = signals.RAM{
		Phase: phaseSelect,
		OE:    !write,
		WE:    write,
		Addr:  addr,
		DS:    sel,
		Din:   data,
	}
	h.Cycle()

	h.in.RAM.Phase = phaseAccess
	out := h.Cycle()

	h.in.RAM = signals.RAM{Phase: phaseIdle}
	h.Cycle()

	return out.RAM.Dout
}
