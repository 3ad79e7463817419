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

package hardware_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/environment"
	"github.com/jetsetilly/nanosim/hardware"
	"github.com/jetsetilly/nanosim/hardware/memory"
	"github.com/jetsetilly/nanosim/hardware/preferences"
	"github.com/jetsetilly/nanosim/hardware/sdcard"
	"github.com/jetsetilly/nanosim/hardware/signals"
	"github.com/jetsetilly/nanosim/hardware/storage"
	"github.com/jetsetilly/nanosim/host"
	"github.com/jetsetilly/nanosim/test"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.ReadDelay.Set(100))
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)
	return env
}

func newImage(t *testing.T, blocks int) string {
	t.Helper()
	d := make([]byte, blocks*storage.SectorSize)
	for i := range d {
		d[i] = uint8(i / storage.SectorSize)
	}
	fn := filepath.Join(t.TempDir(), "image.dsk")
	test.DemandSuccess(t, os.WriteFile(fn, d, 0600))
	return fn
}

func TestSessionBindError(t *testing.T) {
	env := newEnv(t)
	test.DemandSuccess(t, env.Prefs.Images[0].Set(filepath.Join(t.TempDir(), "missing.dsk")))
	test.DemandSuccess(t, env.Prefs.Images[2].Set(newImage(t, 4)))

	s, err := hardware.NewSession(env)
	test.ExpectSuccess(t, curated.Has(err, storage.BindError))

	// the session is still usable and the other image is bound
	if s == nil {
		t.Fatalf("expected a session even when an image cannot be bound")
	}
	test.ExpectFailure(t, s.Router.Bound(0))
	test.ExpectSuccess(t, s.Router.Bound(2))
	test.ExpectSuccess(t, s.Close())
}

func TestSessionIdle(t *testing.T) {
	s, err := hardware.NewSession(newEnv(t))
	test.DemandSuccess(t, err)
	defer s.Close()

	// nothing happens on a falling edge
	out := s.Tick(signals.In{Clk: false})
	test.ExpectEquality(t, out, signals.Idle())
}

func TestSessionMount(t *testing.T) {
	env := newEnv(t)
	test.DemandSuccess(t, env.Prefs.Images[0].Set(newImage(t, 4)))

	s, err := hardware.NewSession(env)
	test.DemandSuccess(t, err)
	defer s.Close()

	h := host.NewHost(s)

	var mounted int
	for i := 0; i < 1600; i++ {
		if h.Cycle().Image.Mounted == 0x01 {
			mounted++
		}
	}
	test.ExpectEquality(t, mounted, 1)
	test.ExpectEquality(t, h.Out().Image.Size, uint64(4*storage.SectorSize))

	// 1600 cycles at 16MHz
	test.ExpectEquality(t, env.Clock.HalfCycles(), uint64(3200))
	test.ExpectEquality(t, s.Diagnostics().Elapsed, "0.100ms")
}

func TestSessionCard(t *testing.T) {
	env := newEnv(t)
	test.DemandSuccess(t, env.Prefs.Images[1].Set(newImage(t, 8)))

	s, err := hardware.NewSession(env)
	test.DemandSuccess(t, err)
	defer s.Close()

	h := host.NewHost(s)

	a, err := h.Command(sdcard.SelectCard, sdcard.RCA<<16)
	test.DemandSuccess(t, err)
	b, err := h.Command(sdcard.SelectCard, sdcard.RCA<<16)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a, b)

	blk, err := h.ReadBlock(0x02000005)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(blk[:storage.SectorSize], bytes.Repeat([]byte{0x05}, storage.SectorSize)))

	_, err = h.WriteBlock(0x02000001, make([]byte, storage.SectorSize), true)
	test.DemandSuccess(t, err)

	d := s.Diagnostics()
	test.ExpectEquality(t, d.Card.BlocksRead, 1)
	test.ExpectEquality(t, d.Card.DataCRCErrors, 1)
	test.ExpectEquality(t, d.Problems(), 1)
}

func TestSessionMemory(t *testing.T) {
	s, err := hardware.NewSession(newEnv(t))
	test.DemandSuccess(t, err)
	defer s.Close()

	h := host.NewHost(s)

	h.MemWrite(0x1000, 0x1234, memory.SelectWord)
	test.ExpectEquality(t, h.MemRead(0x1000), 0x1234)

	h.MemWrite(0x1001, 0xabcd, memory.SelectHigh)
	test.ExpectEquality(t, h.MemRead(0x1001), 0xab00)

	// the neighbouring word in the same SDRAM cell is untouched
	test.ExpectEquality(t, h.MemRead(0x1000), 0x1234)

	d := s.Diagnostics()
	test.ExpectEquality(t, d.Memory.Writes, 2)
	test.ExpectEquality(t, d.Memory.Reads, 3)
	test.ExpectEquality(t, d.Memory.Mismatches(), 0)
	test.ExpectEquality(t, d.Problems(), 0)
}
