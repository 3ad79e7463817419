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

package performance

import "time"

// CalcSpeed takes the amount of simulated time and the amount of wall clock
// time it took and returns the speed factor. The speed factor is the number
// of wall clock milliseconds per simulated millisecond.
func CalcSpeed(simulated time.Duration, wall time.Duration) float64 {
	if simulated <= 0 {
		return 0
	}
	return float64(wall) / float64(simulated)
}
