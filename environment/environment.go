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

package environment

import (
	"time"

	"github.com/jetsetilly/nanosim/hardware/preferences"
)

// Label is used to name the environment
type Label string

// MainSimulation is the label used for the environment created by the main
// program.
const MainSimulation = Label("main")

// Environment is used to provide context for a simulation session. The
// environment is also the logger.Permission value for all log entries made by
// the session, which means log entries are stamped with simulated time.
type Environment struct {
	Label Label

	// the hardware preferences
	Prefs *preferences.Preferences

	// the simulated clock. advanced by the session on every tick
	Clock Clock
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance
// will be created from the default preferences file.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
	env.Clock.Reset()
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.Prefs.Logging.Get().(bool)
}

// Elapsed implements the logger.Timed interface.
func (env *Environment) Elapsed() time.Duration {
	return env.Clock.Elapsed(env.Prefs.ClockMHz.Get().(float64))
}
