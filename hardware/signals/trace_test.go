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

package signals_test

import (
	"testing"

	"github.com/jetsetilly/nanosim/hardware/signals"
	"github.com/jetsetilly/nanosim/test"
)

func TestTrace(t *testing.T) {
	tr := signals.NewTrace()
	test.ExpectFailure(t, tr.Rising())

	tr.Tick(true)
	test.ExpectSuccess(t, tr.Rising())

	tr.Tick(true)
	test.ExpectFailure(t, tr.Rising())

	tr.Tick(false)
	test.ExpectFailure(t, tr.Rising())

	tr.Tick(true)
	test.ExpectSuccess(t, tr.Rising())
}
