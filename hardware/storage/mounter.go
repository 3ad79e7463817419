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

package storage

import (
	"github.com/jetsetilly/nanosim/hardware/signals"
	"github.com/jetsetilly/nanosim/logger"
)

// timing of the mount sequence. each drive has a window of mountWindow main
// clock cycles. the size of the image is announced mountAnnounce cycles into
// the window and the mounted signal is pulsed for a single cycle at
// mountPulse
const (
	mountWindow   = 1000
	mountAnnounce = 300
	mountPulse    = 350
)

// Mounter simulates the insertion of the bound disk images, one drive after
// the other, in the first few thousand cycles after power on.
type Mounter struct {
	router *Router

	count int

	// the current state of the image signals
	Signals signals.Image
}

// NewMounter is the preferred method of initialisation for the Mounter type.
func NewMounter(router *Router) *Mounter {
	return &Mounter{
		router: router,
	}
}

// Done returns true when the mount sequence has completed.
func (m *Mounter) Done() bool {
	return m.count >= NumDrives*mountWindow
}

// Step the mount sequence by one main clock cycle.
func (m *Mounter) Step() signals.Image {
	if m.Done() {
		return m.Signals
	}

	drive := m.count / mountWindow
	cnt := m.count % mountWindow
	m.count++

	img := m.router.Image(drive)
	if img == nil {
		return m.Signals
	}

	switch cnt {
	case mountAnnounce:
		logger.Logf(m.router.env, "storage", "drive %d mounting %s, size = %d", drive, img.Path, img.Size)
		m.Signals.Size = uint64(img.Size)
	case mountPulse:
		m.Signals.Mounted = 0x01 << drive
	case mountPulse + 1:
		m.Signals.Mounted = 0
	}

	return m.Signals
}
