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

// Trace records the state of an electrical line, whether it is high or low,
// and also whether the immediately previous state is also high or low.
//
// Moving from one state to the other is done with Tick(bool) where a boolean
// value of true indicates a high voltage state.
//
// The function Rising() returns true if the line voltage has moved from a low
// state to a high state. Everything in the simulated hardware happens on
// rising edges.
//
// Deriving conditions from two traces is convenient. For example, given the
// main clock and the SD clock, the condition for the card reacting to a bus
// edge is:
//
//	if clk.Rising() && sdclk.Rising() {
//		card.Step()
//	}
type Trace struct {
	from bool
	to   bool
}

// NewTrace is the preferred method of initialisation for the Trace type. The
// line starts in the low state.
func NewTrace() Trace {
	return Trace{}
}

// Rising returns true if the most recent Tick() moved the line from low to high.
func (tr *Trace) Rising() bool {
	return !tr.from && tr.to
}

// Tick sets the new state of the line.
func (tr *Trace) Tick(v bool) {
	tr.from = tr.to
	tr.to = v
}
