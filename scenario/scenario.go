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

package scenario

import (
	"encoding/hex"
	"time"

	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/environment"
	"github.com/jetsetilly/nanosim/hardware"
	"github.com/jetsetilly/nanosim/hardware/memory"
	"github.com/jetsetilly/nanosim/hardware/sdcard/crc"
	"github.com/jetsetilly/nanosim/hardware/storage"
	"github.com/jetsetilly/nanosim/host"
	"github.com/jetsetilly/nanosim/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error returned by Run() functions.
const ScriptError = "scenario: %v"

// Scenario is a Lua interpreter connected to a session.
type Scenario struct {
	env     *environment.Environment
	session *hardware.Session
	host    *host.Host

	L *lua.LState
}

// NewScenario is the preferred method of initialisation for the Scenario type.
func NewScenario(env *environment.Environment, session *hardware.Session) *Scenario {
	sc := &Scenario{
		env:     env,
		session: session,
		host:    host.NewHost(session),
		L:       lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"cmd":         sc.cmd,
		"cid":         sc.cid,
		"read_block":  sc.readBlock,
		"write_block": sc.writeBlock,
		"mem_write":   sc.memWrite,
		"mem_read":    sc.memRead,
		"idle":        sc.idle,
		"cycles":      sc.cycles,
		"log":         sc.log,
		"elapsed":     sc.elapsed,
		"problems":    sc.problems,
		"selector":    sc.selector,
		"mounted":     sc.mounted,
	} {
		sc.L.SetGlobal(name, sc.L.NewFunction(fn))
	}

	return sc
}

// Host returns the host used by the scenario.
func (sc *Scenario) Host() *host.Host {
	return sc.host
}

// Close the Lua interpreter. The session is not closed.
func (sc *Scenario) Close() {
	sc.L.Close()
}

// RunFile runs the script in the named file.
func (sc *Scenario) RunFile(filename string) error {
	logger.Logf(sc.env, "scenario", "running %s", filename)
	if err := sc.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the script in the string.
func (sc *Scenario) RunString(script string) error {
	if err := sc.L.DoString(script); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (sc *Scenario) cmd(L *lua.LState) int {
	index := L.CheckInt(1)
	arg := L.CheckInt64(2)

	r, err := sc.host.Command(uint8(index), uint32(arg))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(lua.LNumber(r.Arg()))
	L.Push(lua.LNumber(r.Index()))
	return 2
}

func (sc *Scenario) cid(L *lua.LState) int {
	cid, err := sc.host.CID()
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LString(hex.EncodeToString(cid[:])))
	return 1
}

func (sc *Scenario) readBlock(L *lua.LState) int {
	arg := L.CheckInt64(1)

	blk, err := sc.host.ReadBlock(uint32(arg))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	var t [crc.TrailerLength]byte
	copy(t[:], blk[storage.SectorSize:])

	L.Push(lua.LString(blk[:storage.SectorSize]))
	L.Push(lua.LBool(crc.Verify(blk[:storage.SectorSize], t) == nil))
	return 2
}

func (sc *Scenario) writeBlock(L *lua.LState) int {
	arg := L.CheckInt64(1)

	payload := make([]byte, storage.SectorSize)
	switch v := L.Get(2).(type) {
	case lua.LString:
		copy(payload, string(v))
	case lua.LNumber:
		for i := range payload {
			payload[i] = uint8(v)
		}
	default:
		L.ArgError(2, "string or number expected")
		return 0
	}

	corrupt := L.OptBool(3, false)

	busy, err := sc.host.WriteBlock(uint32(arg), payload, corrupt)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	L.Push(lua.LNumber(busy))
	return 1
}

func (sc *Scenario) memWrite(L *lua.LState) int {
	addr := L.CheckInt64(1)
	data := L.CheckInt(2)
	sel := L.OptInt(3, memory.SelectWord)
	sc.host.MemWrite(uint32(addr), uint16(data), uint8(sel))
	return 0
}

func (sc *Scenario) memRead(L *lua.LState) int {
	addr := L.CheckInt64(1)
	L.Push(lua.LNumber(sc.host.MemRead(uint32(addr))))
	return 1
}

func (sc *Scenario) idle(L *lua.LState) int {
	sc.host.Idle(L.CheckInt(1))
	return 0
}

func (sc *Scenario) cycles(L *lua.LState) int {
	sc.host.Cycles(L.CheckInt(1))
	return 0
}

func (sc *Scenario) log(L *lua.LState) int {
	logger.Log(sc.env, "scenario", L.CheckString(1))
	return 0
}

func (sc *Scenario) elapsed(L *lua.LState) int {
	L.Push(lua.LNumber(float64(sc.env.Elapsed()) / float64(time.Millisecond)))
	return 1
}

func (sc *Scenario) problems(L *lua.LState) int {
	L.Push(lua.LNumber(sc.session.Diagnostics().Problems()))
	return 1
}

func (sc *Scenario) selector(L *lua.LState) int {
	drive := L.CheckInt(1)
	if drive < 0 || drive >= storage.NumDrives {
		L.ArgError(1, "drive out of range")
		return 0
	}
	block := L.OptInt64(2, 0)
	L.Push(lua.LNumber(uint32(1)<<(24+drive) | uint32(block)&0x00ffffff))
	return 1
}

func (sc *Scenario) mounted(L *lua.LState) int {
	L.Push(lua.LBool(sc.session.Router.Bound(L.CheckInt(1))))
	return 1
}
