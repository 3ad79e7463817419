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

package signals

// SD is the state of the SD card bus as driven by the host.
type SD struct {
	Clk bool
	Cmd bool

	// the four data lines. line n is bit n
	Dat uint8
}

// SDRAM is the state of the banked memory bus. Control lines are active low.
type SDRAM struct {
	CSn  bool
	RASn bool
	CASn bool
	WEn  bool

	Addr uint16
	BA   uint8

	// byte lane mask for the 32-bit data word. bit n masks byte n
	DQM  uint8
	Data uint32
}

// RAM is the state of the flat memory bus.
type RAM struct {
	// the current phase of the memory cycle
	Phase uint8

	OE bool
	WE bool

	// 16-bit word address
	Addr uint32

	// byte select. bit 1 is the high byte and bit 0 the low byte
	DS  uint8
	Din uint16
}

// In is the state of every input to the simulated hardware for a single
// half-cycle of the main clock.
type In struct {
	Clk bool

	SD    SD
	SDRAM SDRAM
	RAM   RAM
}

// SDOut is the state of the SD card bus as driven by the card.
type SDOut struct {
	Cmd bool
	Dat uint8
}

// SDRAMOut is the data driven by the banked memory model.
type SDRAMOut struct {
	Data uint32
}

// RAMOut is the data driven by the flat memory model.
type RAMOut struct {
	Dout uint16
}

// Image reports disk image insertion.
type Image struct {
	// a single bit is set for one main clock cycle when an image is mounted.
	// bit n is drive n
	Mounted uint8

	// size in bytes of the most recently mounted image
	Size uint64
}

// Out is the state of every output of the simulated hardware.
type Out struct {
	SD    SDOut
	SDRAM SDRAMOut
	RAM   RAMOut
	Image Image
}

// Idle returns the output state of the hardware before the first tick. The
// SD bus lines are pulled up.
func Idle() Out {
	return Out{
		SD: SDOut{
			Cmd: true,
			Dat: 0x0f,
		},
	}
}
