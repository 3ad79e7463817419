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

// Package host drives the simulated hardware in the same way as the memory
// and storage controller under test. It is used by the scenario package and
// by tests to exercise the SD card and the memory verifier.
//
// The host operates a Bus, which is anything that accepts one half-cycle of
// input signals and returns the output signals. The hardware.Session type
// is a Bus.
//
// One SD clock cycle takes two main clock cycles, which is four half-cycles:
//
//	clk 0, sdclk 0
//	clk 1, sdclk 0
//	clk 0, sdclk 1
//	clk 1, sdclk 1  <- rising edge seen by the card
//
// The output of the card is sampled after the fourth half-cycle.
package host
