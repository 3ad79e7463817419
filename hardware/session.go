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

package hardware

import (
	"fmt"
	"time"

	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/environment"
	"github.com/jetsetilly/nanosim/hardware/memory"
	"github.com/jetsetilly/nanosim/hardware/sdcard"
	"github.com/jetsetilly/nanosim/hardware/signals"
	"github.com/jetsetilly/nanosim/hardware/storage"
	"github.com/jetsetilly/nanosim/logger"
)

// Session is the main container for the simulated components.
type Session struct {
	env *environment.Environment

	Router   *storage.Router
	Mounter  *storage.Mounter
	Card     *sdcard.Card
	Verifier *memory.Verifier

	clk signals.Trace
	out signals.Out
}

// NewSession creates a new Session and everything associated with it. Disk
// images named in the preferences are bound to their drives. An error binding
// an image is returned but all other images are still bound.
func NewSession(env *environment.Environment) (*Session, error) {
	s := &Session{
		env: env,
		clk: signals.NewTrace(),
		out: signals.Idle(),
	}

	s.Router = storage.NewRouter(env)
	s.Mounter = storage.NewMounter(s.Router)
	s.Card = sdcard.NewCard(env, s.Router)
	s.Verifier = memory.NewVerifier(env)

	var err error
	for d := range env.Prefs.Images {
		fn := env.Prefs.Images[d].String()
		if fn == "" {
			continue
		}
		if e := s.Router.Bind(d, fn); e != nil && err == nil {
			err = e
		}
	}

	if err != nil {
		return s, curated.Errorf("session: %v", err)
	}

	logger.Logf(env, "session", "created (%s)", s.Router)

	return s, nil
}

func (s *Session) String() string {
	return fmt.Sprintf("%s, %s", s.Card, s.Router)
}

// Tick advances the session by one half-cycle of the main clock.
func (s *Session) Tick(in signals.In) signals.Out {
	s.env.Clock.Step()

	s.clk.Tick(in.Clk)
	if !s.clk.Rising() {
		return s.out
	}

	s.out.Image = s.Mounter.Step()
	s.out.SD = s.Card.Step(in.SD)
	s.out.SDRAM, s.out.RAM = s.Verifier.Step(in.SDRAM, in.RAM)

	return s.out
}

// Close the session. Open disk images are closed.
func (s *Session) Close() error {
	logger.Log(s.env, "session", "closing")
	return s.Router.Close()
}

// Diagnostics is a summary of the problems found during the session.
type Diagnostics struct {
	Elapsed string

	Card   sdcard.Stats
	Memory memory.Stats
}

func (d Diagnostics) String() string {
	return fmt.Sprintf("after %s\nsdcard: %s\nmemory: %s", d.Elapsed, d.Card, d.Memory)
}

// Problems returns the total number of problems found. CRC errors, unknown
// commands and memory mismatches are all problems.
func (d Diagnostics) Problems() int {
	return d.Card.CommandCRCErrors + d.Card.Unrecognised + d.Card.DataCRCErrors +
		d.Memory.Mismatches() + d.Memory.Unmatched
}

// Diagnostics returns a summary of the session so far.
func (s *Session) Diagnostics() Diagnostics {
	return Diagnostics{
		Elapsed: fmt.Sprintf("%.3fms", float64(s.env.Elapsed())/float64(time.Millisecond)),
		Card:    s.Card.Stats,
		Memory:  s.Verifier.Stats,
	}
}
