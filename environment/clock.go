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

package environment

import "time"

// Clock counts half-cycles of the main clock.
type Clock struct {
	halfCycles uint64
}

// Step advances the clock by one half-cycle.
func (c *Clock) Step() {
	c.halfCycles++
}

// Reset the clock to zero.
func (c *Clock) Reset() {
	c.halfCycles = 0
}

// HalfCycles returns the number of half-cycles since the last reset.
func (c *Clock) HalfCycles() uint64 {
	return c.halfCycles
}

// Elapsed converts the number of half-cycles into simulated time for a main
// clock of the given speed.
func (c *Clock) Elapsed(mhz float64) time.Duration {
	if mhz <= 0 {
		return 0
	}
	// one half-cycle is 0.5/mhz microseconds
	ns := float64(c.halfCycles) * 500.0 / mhz
	return time.Duration(ns)
}
