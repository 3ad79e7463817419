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

//go:build !statsview

package statsview_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/nanosim/statsview"
	"github.com/jetsetilly/nanosim/test"
)

func TestStub(t *testing.T) {
	test.ExpectFailure(t, statsview.Available())

	var out bytes.Buffer
	stop := statsview.Launch(&out)
	stop()
	test.ExpectEquality(t, out.Len(), 0)
}
