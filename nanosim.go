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

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/environment"
	"github.com/jetsetilly/nanosim/hardware"
	"github.com/jetsetilly/nanosim/hardware/sdcard/crc"
	"github.com/jetsetilly/nanosim/hardware/storage"
	"github.com/jetsetilly/nanosim/logger"
	"github.com/jetsetilly/nanosim/modalflag"
	"github.com/jetsetilly/nanosim/performance"
	"github.com/jetsetilly/nanosim/prefs"
	"github.com/jetsetilly/nanosim/scenario"
	"github.com/jetsetilly/nanosim/statsview"
	"github.com/jetsetilly/nanosim/version"
	"golang.org/x/term"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and runs the selected mode. returns the exit
// code for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "TRAILER")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run only (key::value; key::value)")
	echo := md.AddBool("echo", false, "echo log to stdout")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	if *echo {
		setEcho(output)
		defer logger.SetEcho(nil)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PERFORMANCE":
		err = perform(md)
	case "TRAILER":
		err = trailer(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// log entries echoed to a terminal are colorized.
func setEcho(output io.Writer) {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output))
		return
	}
	logger.SetEcho(output)
}

// newSession creates an environment from the preferences on disk and a
// session for that environment. a session that could not bind all of its
// images is still returned along with the error.
func newSession(output io.Writer) (*environment.Environment, *hardware.Session, error) {
	env, err := environment.NewEnvironment(environment.MainSimulation, nil)
	if err != nil {
		return nil, nil, err
	}

	session, err := hardware.NewSession(env)
	if err != nil {
		if session == nil {
			return nil, nil, err
		}
		fmt.Fprintf(output, "* %v\n", err)
	}

	return env, session, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("runs the Lua script given as the argument. the default scenario is run if no script is given")
	memvizFile := md.AddString("memviz", "", "write graphviz dump of session state to file when the script ends")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	env, session, err := newSession(md.Output)
	if err != nil {
		return err
	}
	defer session.Close()

	sc := scenario.NewScenario(env, session)
	defer sc.Close()

	if md.GetArg(0) == "" {
		err = sc.RunString(scenario.DefaultScript)
	} else {
		err = sc.RunFile(md.GetArg(0))
	}
	if err != nil {
		return err
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		memviz.Map(f, session.Card, session.Mounter)
		if err := f.Close(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}

	d := session.Diagnostics()
	fmt.Fprintln(md.Output, d)
	if d.Problems() > 0 {
		return curated.Errorf("run: %d problems found", d.Problems())
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("runs the Lua script given as the argument repeatedly. the default scenario is used if no script is given")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "create profile reports: cpu, mem, trace, all (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	var script string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		b, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return curated.Errorf(scenario.ScriptError, err)
		}
		script = string(b)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if !statsview.Available() {
			fmt.Fprintln(md.Output, "* statsview not available in this build")
		} else {
			stop := statsview.Launch(md.Output)
			defer stop()
		}
	}

	env, err := environment.NewEnvironment(environment.MainSimulation, nil)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, env, prf, script, *duration)
}

func trailer(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("prints the CRC16 trailer for a block of a disk image. arguments are the image file and the block number (default 0)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var block int64
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("disk image required for %s mode", md)
	case 1:
	case 2:
		block, err = strconv.ParseInt(md.GetArg(1), 0, 32)
		if err != nil || block < 0 {
			return fmt.Errorf("invalid block number: %s", md.GetArg(1))
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return curated.Errorf("trailer: %v", err)
	}
	defer f.Close()

	// a block that is not wholly inside the image is all zeroes, which is
	// what the card sends in the same situation
	buf := make([]byte, storage.SectorSize)
	if _, err := storage.ReadBlock(f, uint32(block), buf); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return curated.Errorf("trailer: %v", err)
	}

	lanes := crc.Lanes(buf)
	fmt.Fprintf(md.Output, "lanes: %04x %04x %04x %04x\n", lanes[0], lanes[1], lanes[2], lanes[3])
	t := crc.Trailer(buf)
	fmt.Fprintf(md.Output, "trailer: %s\n", hex.EncodeToString(t[:]))

	return nil
}
