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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/prefs"
	"github.com/jetsetilly/nanosim/resources"
)

// Number of disk image slots.
const NumImages = 4

// Default values for the card timing preferences. The values are in SD clock
// edges.
const (
	DefaultReadDelay = 1000
	DefaultWriteBusy = 100
)

// Default main clock speed in MHz.
const DefaultClockMHz = 16.0

// Preferences defines and collates all the preference values used by the
// simulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// disk image filenames for each slot. an empty string means the slot is
	// unbound
	Images [NumImages]prefs.String

	// write blocks received by the card back to the disk image
	Persist prefs.Bool

	// number of SD clock edges between a read command and the start bit
	ReadDelay prefs.Int

	// number of SD clock edges the card holds the busy signal after a write
	WriteBusy prefs.Int

	// compare the flat memory model against the banked memory model
	CrossCheck prefs.Bool

	// allow log entries to be created
	Logging prefs.Bool

	// speed of the main clock in MHz. used to convert tick counts to
	// simulated time
	ClockMHz prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that a
// specific file is used rather than the default preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for i := range p.Images {
		err = p.dsk.Add(imageKey(i), &p.Images[i])
		if err != nil {
			return nil, err
		}
	}
	err = p.dsk.Add("sdcard.persist", &p.Persist)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sdcard.readdelay", &p.ReadDelay)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sdcard.writebusy", &p.WriteBusy)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.crosscheck", &p.CrossCheck)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("logging.enabled", &p.Logging)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("session.clockmhz", &p.ClockMHz)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

func imageKey(i int) string {
	return fmt.Sprintf("sdcard.image%d", i)
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	for i := range p.Images {
		p.Images[i].Set("")
	}
	p.Persist.Set(false)
	p.ReadDelay.Set(DefaultReadDelay)
	p.WriteBusy.Set(DefaultWriteBusy)
	p.CrossCheck.Set(true)
	p.Logging.Set(true)
	p.ClockMHz.Set(DefaultClockMHz)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
