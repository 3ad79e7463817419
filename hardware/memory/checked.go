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
	"github.com/jetsetilly/nanosim/logger"
)

// Checked decorates a Memory with a comparison against the SDRAM. Accesses
// are passed to the decorated Memory unchanged.
type Checked struct {
	env *environment.Environment
	mem Memory
	ref *SDRAM

	stats *Stats
}

// NewChecked is the preferred method of initialisation for the Checked type.
// Statistics are accumulated in the stats argument.
func NewChecked(env *environment.Environment, mem Memory, ref *SDRAM, stats *Stats) *Checked {
	return &Checked{
		env:   env,
		mem:   mem,
		ref:   ref,
		stats: stats,
	}
}

// Read implements the Memory interface. The value read is compared with the
// data most recently returned by the SDRAM.
func (m *Checked) Read(addr uint32) uint16 {
	v := m.mem.Read(addr)
	m.stats.Reads++

	if r := m.ref.Latched(addr); v != r {
		m.stats.ReadMismatches++
		logger.Logf(m.env, "memory", "read mismatch @%08x: %04x != %04x", addr<<1, v, r)
	}

	return v
}

// Write implements the Memory interface. The value stored is compared with
// the value stored in the SDRAM. The SDRAM is expected to have completed the
// same write already.
func (m *Checked) Write(addr uint32, data uint16, sel uint8) {
	m.mem.Write(addr, data, sel)
	m.stats.Writes++

	if v, r := m.mem.Read(addr), m.ref.Read(addr); v != r {
		m.stats.WriteMismatches++
		logger.Logf(m.env, "memory", "write mismatch @%08x: %04x != %04x", addr<<1, v, r)
	}
}
