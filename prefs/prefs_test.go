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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/prefs"
	"github.com/jetsetilly/nanosim/test"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	return string(b)
}

func TestDefaultValues(t *testing.T) {
	var b prefs.Bool
	var i prefs.Int
	var f prefs.Float
	var s prefs.String

	test.ExpectEquality(t, b.String(), "false")
	test.ExpectEquality(t, i.String(), "0")
	test.ExpectEquality(t, f.String(), "0.000")
	test.ExpectEquality(t, s.String(), "")
}

func TestConversion(t *testing.T) {
	var b prefs.Bool
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("nonsense"))
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectFailure(t, b.Set(10))

	var i prefs.Int
	test.ExpectSuccess(t, i.Set(" 1000 "))
	test.ExpectEquality(t, i.Get().(int), 1000)
	test.ExpectFailure(t, i.Set("ten"))
	test.ExpectEquality(t, i.Get().(int), 1000)

	var f prefs.Float
	test.ExpectSuccess(t, f.Set("16.0"))
	test.ExpectEquality(t, f.String(), "16.000")
	test.ExpectSuccess(t, f.Set(8))
	test.ExpectEquality(t, f.Get().(float64), 8.0)
}

func TestHooks(t *testing.T) {
	var i prefs.Int
	var pre, post int

	i.SetHookPre(func(v prefs.Value) error {
		pre = v.(int)
		return nil
	})
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int) * 2
		return nil
	})

	test.ExpectSuccess(t, i.Set(21))
	test.ExpectEquality(t, pre, 21)
	test.ExpectEquality(t, post, 42)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var persist prefs.Bool
	var delay prefs.Int
	var image prefs.String

	test.ExpectSuccess(t, dsk.Add("sdcard.persist", &persist))
	test.ExpectSuccess(t, dsk.Add("sdcard.readdelay", &delay))
	test.ExpectSuccess(t, dsk.Add("sdcard.image0", &image))
	test.ExpectFailure(t, dsk.Add("bad :: key", &image))

	// loading a non-existent file is a curated error
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, persist.Set(true))
	test.ExpectSuccess(t, delay.Set(1000))
	test.ExpectSuccess(t, image.Set("floppy.dsk"))
	test.ExpectSuccess(t, dsk.Save())

	test.ExpectEquality(t, readFile(t, fn), prefs.WarningBoilerPlate+"\n"+
		"sdcard.image0 :: floppy.dsk\n"+
		"sdcard.persist :: true\n"+
		"sdcard.readdelay :: 1000\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, persist.Get().(bool), false)
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, persist.Get().(bool), true)
	test.ExpectEquality(t, delay.Get().(int), 1000)
	test.ExpectEquality(t, image.String(), "floppy.dsk")
}

func TestDiskUnknownKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	a, _ := prefs.NewDisk(fn)
	var x prefs.Int
	test.ExpectSuccess(t, a.Add("memory.crosscheck", &x))
	test.ExpectSuccess(t, x.Set(1))
	test.ExpectSuccess(t, a.Save())

	b, _ := prefs.NewDisk(fn)
	var y prefs.Int
	test.ExpectSuccess(t, b.Add("sdcard.writebusy", &y))
	test.ExpectSuccess(t, y.Set(100))
	test.ExpectSuccess(t, b.Save())

	// the entry saved by the first disk instance survives
	test.ExpectEquality(t, readFile(t, fn), prefs.WarningBoilerPlate+"\n"+
		"memory.crosscheck :: 1\n"+
		"sdcard.writebusy :: 100\n")
}

func TestCommandLineStack(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	dsk, _ := prefs.NewDisk(fn)

	var delay prefs.Int
	test.ExpectSuccess(t, dsk.Add("sdcard.readdelay", &delay))

	prefs.PushCommandLineStack("sdcard.readdelay::50; sdcard.unused::1")
	err := dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, delay.Get().(int), 50)

	// the used value has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sdcard.unused::1")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
