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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/nanosim/hardware/storage"
	"github.com/jetsetilly/nanosim/test"
)

func TestTrailerMode(t *testing.T) {
	d := make([]byte, 2*storage.SectorSize)
	for i := storage.SectorSize; i < len(d); i++ {
		d[i] = 0xff
	}
	fn := filepath.Join(t.TempDir(), "image.dsk")
	test.DemandSuccess(t, os.WriteFile(fn, d, 0600))

	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"trailer", fn}, &out), 0)
	test.ExpectEquality(t, out.String(), "lanes: 0000 0000 0000 0000\ntrailer: 0000000000000000\n")

	out.Reset()
	test.ExpectEquality(t, launch([]string{"trailer", fn, "1"}, &out), 0)
	test.ExpectEquality(t, out.String(), "lanes: eda9 eda9 eda9 eda9\ntrailer: fff0ff0ff0f0f00f\n")

	// beyond the end of the image
	out.Reset()
	test.ExpectEquality(t, launch([]string{"trailer", fn, "100"}, &out), 0)
	test.ExpectEquality(t, out.String(), "lanes: 0000 0000 0000 0000\ntrailer: 0000000000000000\n")
}

func TestTrailerModePartialBlock(t *testing.T) {
	d := make([]byte, storage.SectorSize+storage.SectorSize/2)
	for i := range d {
		d[i] = 0xff
	}
	fn := filepath.Join(t.TempDir(), "image.dsk")
	test.DemandSuccess(t, os.WriteFile(fn, d, 0600))

	// the partial last block is treated as zeroes, in the same way as the card
	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"trailer", fn, "1"}, &out), 0)
	test.ExpectEquality(t, out.String(), "lanes: 0000 0000 0000 0000\ntrailer: 0000000000000000\n")
}

func TestTrailerModeErrors(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"trailer"}, &out), 20)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* error in TRAILER mode"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"trailer", filepath.Join(t.TempDir(), "missing.dsk")}, &out), 20)

	out.Reset()
	test.ExpectEquality(t, launch([]string{"trailer", "a", "b", "c"}, &out), 20)
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"-help"}, &out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "available sub-modes: RUN, PERFORMANCE, TRAILER"))
}

func TestBadFlag(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, &out), 10)
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"-version"}, &out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "nanosim"))
}
