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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// help writes the help message for the current mode. usage is the output of
// the flag package, which always begins with the line "Usage:".
func (md *Modes) help(usage string) {
	if md.Output == nil {
		return
	}

	lines := strings.SplitN(usage, "\n", 2)
	flags := ""
	if len(lines) > 1 {
		flags = lines[1]
	}

	if flags == "" && len(md.subModes) == 0 {
		io.WriteString(md.Output, "No help available")
		if md.Path() != "" {
			fmt.Fprintf(md.Output, " for %s", md.Path())
		}
		io.WriteString(md.Output, "\n")
		return
	}

	if md.Path() != "" {
		fmt.Fprintf(md.Output, "%s for %s mode\n", lines[0], md.Path())
	} else {
		fmt.Fprintf(md.Output, "%s\n", lines[0])
	}

	io.WriteString(md.Output, flags)

	if len(md.subModes) > 0 {
		if flags != "" {
			io.WriteString(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
