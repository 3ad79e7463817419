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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nanosim/hardware/preferences"
	"github.com/jetsetilly/nanosim/prefs"
	"github.com/jetsetilly/nanosim/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Persist.Get().(bool), false)
	test.ExpectEquality(t, p.ReadDelay.Get().(int), preferences.DefaultReadDelay)
	test.ExpectEquality(t, p.WriteBusy.Get().(int), preferences.DefaultWriteBusy)
	test.ExpectEquality(t, p.CrossCheck.Get().(bool), true)
	test.ExpectEquality(t, p.ClockMHz.Get().(float64), preferences.DefaultClockMHz)
	for i := range p.Images {
		test.ExpectEquality(t, p.Images[i].String(), "")
	}
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Images[2].Set("hd.img"))
	test.ExpectSuccess(t, p.ReadDelay.Set(10))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Images[2].String(), "hd.img")
	test.ExpectEquality(t, q.ReadDelay.Get().(int), 10)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("sdcard.persist::true; sdcard.image1::floppy.dsk")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Persist.Get().(bool), true)
	test.ExpectEquality(t, p.Images[1].String(), "floppy.dsk")
}
