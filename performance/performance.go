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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/environment"
	"github.com/jetsetilly/nanosim/hardware"
	"github.com/jetsetilly/nanosim/scenario"
)

// sentinal error returned by runner.
var timedOut = errors.New("performance timed out")

// Check the performance of the simulation by running the script repeatedly
// for the specified duration. If the script is empty then the default
// scenario is used.
//
// A cpu profile, memory profile, trace (or a combination of those) will be
// created as defined by the Profile argument.
func Check(output io.Writer, env *environment.Environment, profile Profile, script string, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if script == "" {
		script = scenario.DefaultScript
	}

	session, err := hardware.NewSession(env)
	if err != nil {
		if session != nil {
			session.Close()
		}
		return curated.Errorf("performance: %v", err)
	}
	defer session.Close()

	sc := scenario.NewScenario(env, session)
	defer sc.Close()

	var runs int
	var wall time.Duration

	runner := func() error {
		// the timer is checked only between runs of the script so the
		// measured duration will overshoot slightly
		timesUp := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timesUp <- true
		})

		start := time.Now()
		defer func() {
			wall = time.Since(start)
		}()

		for {
			if err := sc.RunString(script); err != nil {
				return err
			}
			runs++

			select {
			case <-timesUp:
				return timedOut
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	simulated := env.Elapsed()
	output.Write([]byte(fmt.Sprintf("%.3f wall ms per simulated ms (%.3fms simulated in %.2f seconds, %d runs)\n",
		CalcSpeed(simulated, wall), float64(simulated)/float64(time.Millisecond), wall.Seconds(), runs)))
	output.Write([]byte(fmt.Sprintf("%s\n", session.Diagnostics())))

	return nil
}
