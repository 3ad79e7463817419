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

package scenario_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/environment"
	"github.com/jetsetilly/nanosim/hardware"
	"github.com/jetsetilly/nanosim/hardware/preferences"
	"github.com/jetsetilly/nanosim/hardware/storage"
	"github.com/jetsetilly/nanosim/logger"
	"github.com/jetsetilly/nanosim/scenario"
	"github.com/jetsetilly/nanosim/test"
)

func newScenario(t *testing.T, blocks int) (*scenario.Scenario, *hardware.Session) {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.ReadDelay.Set(100))

	if blocks > 0 {
		d := make([]byte, blocks*storage.SectorSize)
		for i := range d {
			d[i] = uint8(i / storage.SectorSize)
		}
		fn := filepath.Join(t.TempDir(), "image.dsk")
		test.DemandSuccess(t, os.WriteFile(fn, d, 0600))
		test.DemandSuccess(t, p.Images[0].Set(fn))
	}

	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)

	s, err := hardware.NewSession(env)
	test.DemandSuccess(t, err)

	sc := scenario.NewScenario(env, s)
	t.Cleanup(func() {
		sc.Close()
		s.Close()
	})

	return sc, s
}

func logContains(detail string) bool {
	var found bool
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == "scenario" && e.Detail == detail {
				found = true
			}
		}
	})
	return found
}

func TestCommand(t *testing.T) {
	sc, _ := newScenario(t, 0)
	test.ExpectSuccess(t, sc.RunString(`
		local r, index = cmd(8, 0x1aa)
		assert(r == 0x1aa, "echo")
		assert(index == 8, "index")
		r, index = cmd(41, 0)
		assert(r == 0xc0ff8000, "ocr")
		assert(index == 0x3f, "ocr index")
		r, index = cmd(9, 0)
		assert(r == nil, "unrecognised command")
		assert(type(index) == "string", "error message")
	`))
}

func TestReadWrite(t *testing.T) {
	sc, s := newScenario(t, 4)
	test.ExpectSuccess(t, sc.RunString(`
		cycles(1200)
		assert(mounted(0))
		assert(not mounted(1))

		local data, good = read_block(selector(0, 3))
		assert(good, "trailer")
		assert(#data == 512, "length")
		assert(string.byte(data, 1) == 3, "content")

		local busy = write_block(selector(0, 1), 0x55)
		assert(busy > 0, "busy")
		write_block(selector(0, 1), "corrupted", true)
	`))

	d := s.Diagnostics()
	test.ExpectEquality(t, d.Card.BlocksRead, 1)
	test.ExpectEquality(t, d.Card.BlocksWritten, 2)
	test.ExpectEquality(t, d.Card.DataCRCErrors, 1)
}

func TestMemory(t *testing.T) {
	sc, s := newScenario(t, 0)
	test.ExpectSuccess(t, sc.RunString(`
		mem_write(0x100, 0x1234)
		mem_write(0x101, 0xabcd, 1)
		assert(mem_read(0x100) == 0x1234)
		assert(mem_read(0x101) == 0x00cd)
		assert(problems() == 0)
	`))
	test.ExpectEquality(t, s.Diagnostics().Memory.Writes, 2)
}

func TestLog(t *testing.T) {
	sc, _ := newScenario(t, 0)
	logger.Clear()

	echo, err := test.NewRingWriter(64)
	test.DemandSuccess(t, err)
	logger.SetEcho(echo)
	defer logger.SetEcho(nil)

	test.ExpectSuccess(t, sc.RunString(`
		idle(10)
		log(string.format("elapsed %s", elapsed() > 0 and "yes" or "no"))
	`))
	test.ExpectSuccess(t, logContains("elapsed yes"))
	test.ExpectSuccess(t, strings.HasSuffix(echo.String(), "scenario: elapsed yes\n"))
}

func TestScriptError(t *testing.T) {
	sc, _ := newScenario(t, 0)

	err := sc.RunString(`error("deliberate")`)
	test.ExpectSuccess(t, curated.Is(err, scenario.ScriptError))

	err = sc.RunString(`this is not lua`)
	test.ExpectSuccess(t, curated.Is(err, scenario.ScriptError))

	err = sc.RunFile(filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, scenario.ScriptError))

	err = sc.RunString(`selector(4)`)
	test.ExpectSuccess(t, curated.Is(err, scenario.ScriptError))
}

func TestRunFile(t *testing.T) {
	sc, _ := newScenario(t, 0)
	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`log("from file")`), 0600))
	logger.Clear()
	test.ExpectSuccess(t, sc.RunFile(fn))
	test.ExpectSuccess(t, logContains("from file"))
}

func TestDefaultScript(t *testing.T) {
	sc, s := newScenario(t, 2)
	test.ExpectSuccess(t, sc.RunString(scenario.DefaultScript))

	d := s.Diagnostics()
	test.ExpectEquality(t, d.Problems(), 0)
	test.ExpectEquality(t, d.Card.BlocksRead, 1)

	// every command of the initialisation sequence, including GO_IDLE_STATE,
	// and the read
	test.ExpectEquality(t, d.Card.Commands, 11)
	test.ExpectEquality(t, d.Card.Unrecognised, 0)
}
