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

package memory

import (
	"github.com/jetsetilly/nanosim/environment"
	"github.com/jetsetilly/nanosim/hardware/signals"
	"github.com/jetsetilly/nanosim/logger"
)

// the phases of the CPU memory cycle that the flat memory reacts to. the
// cycle is selected in phaseSelect and the access is made in phaseAccess, so
// that data is ready to be latched in the following phase
const (
	phaseSelect = 2
	phaseAccess = 6
)

// Verifier drives the two memory models from the memory bus signals.
type Verifier struct {
	env *environment.Environment

	SDRAM *SDRAM
	SRAM  *SRAM

	checked *Checked

	// the SRAM cycle was selected in phaseSelect
	selected bool

	sdramOut signals.SDRAMOut
	ramOut   signals.RAMOut

	Stats Stats
}

// NewVerifier is the preferred method of initialisation for the Verifier type.
func NewVerifier(env *environment.Environment) *Verifier {
	v := &Verifier{
		env:   env,
		SDRAM: NewSDRAM(),
		SRAM:  NewSRAM(),
	}
	v.checked = NewChecked(env, v.SRAM, v.SDRAM, &v.Stats)
	return v
}

// the memory used for the SRAM cycle. comparison with the SDRAM depends on
// the crosscheck preference
func (v *Verifier) flat() Memory {
	if v.env.Prefs.CrossCheck.Get().(bool) {
		return v.checked
	}
	return v.SRAM
}

// Step the verifier by one main clock cycle.
func (v *Verifier) Step(sd signals.SDRAM, ram signals.RAM) (signals.SDRAMOut, signals.RAMOut) {
	returned := v.stepSDRAM(sd)

	if ram.Phase == phaseSelect {
		v.selected = ram.OE || ram.WE
	}

	if ram.Phase == phaseAccess && v.selected {
		mem := v.flat()

		if ram.WE {
			mem.Write(ram.Addr, ram.Din, ram.DS)
		}

		if ram.OE {
			v.ramOut.Dout = mem.Read(ram.Addr)
		} else if returned {
			v.Stats.Unmatched++
			logger.Log(v.env, "memory", "warning: sdram has read but sram didn't")
		}
	}

	return v.sdramOut, v.ramOut
}

// stepSDRAM decodes the SDRAM command. returns true if the SDRAM returned
// data.
func (v *Verifier) stepSDRAM(sd signals.SDRAM) bool {
	if sd.CSn {
		return false
	}

	// ACTIVE
	if !sd.RASn && sd.CASn && sd.WEn {
		v.SDRAM.Activate(sd.BA, sd.Addr)
		v.Stats.Activates++
		return false
	}

	// READ or WRITE. the lower eight bits of the address are the column
	if sd.RASn && !sd.CASn {
		if sd.WEn {
			v.sdramOut.Data = v.SDRAM.Access(uint8(sd.Addr), false, 0, 0)
			v.Stats.SDRAMReads++
			return true
		}
		v.SDRAM.Access(uint8(sd.Addr), true, sd.Data, sd.DQM)
		v.Stats.SDRAMWrites++
	}

	return false
}
