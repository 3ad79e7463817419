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
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/resources"
)

// Profile specifies which profiling (if any) should be applied.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone  Profile = 0b000
	ProfileCPU   Profile = 0b001
	ProfileMem   Profile = 0b010
	ProfileTrace Profile = 0b100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "trace")
	}
	return strings.Join(s, ",")
}

// Sentinal error returned by ParseProfile().
const UnknownProfile = "profile: unknown profile type (%s)"

// ParseProfile converts a comma separated list of profile names to a Profile
// value. Valid names are none, cpu, mem, trace and all.
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, f := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(UnknownProfile, f)
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function and generates the profiles
// specified. Profile files are created in the resources directory and are
// named with the filenameHeader.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	create := func(kind string) (*os.File, error) {
		fn, err := resources.JoinPath(fmt.Sprintf("%s.profile", resources.UniqueFilename(filenameHeader, kind)))
		if err != nil {
			return nil, curated.Errorf("profile: %v", err)
		}
		f, err := os.Create(fn)
		if err != nil {
			return nil, curated.Errorf("profile: %v", err)
		}
		return f, nil
	}

	if profile&ProfileCPU == ProfileCPU {
		f, err := create("cpu")
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("profile: %v", err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := create("trace")
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("profile: %v", err)
			}
		}()

		if err := trace.Start(f); err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer trace.Stop()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := create("mem")
		if err != nil {
			return err
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("profile: %v", err)
		}
	}

	return nil
}
