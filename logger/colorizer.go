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

package logger

import (
	"io"
	"strings"
)

// ANSI pens used by the Colorizer.
const (
	penRed    = "\033[0;31m"
	penGreen  = "\033[0;32m"
	penYellow = "\033[1;33m"
	penNormal = "\033[0m"
)

// lines containing these sub-strings are coloured. the first matching rule wins
var colorRules = []struct {
	match string
	pen   string
}{
	{match: "mismatch", pen: penRed},
	{match: "error", pen: penRed},
	{match: "warning", pen: penYellow},
	{match: "crc ok", pen: penGreen},
}

// Colorizer applies basic coloring rules to logging output.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)
	l := strings.ToLower(s)

	for _, r := range colorRules {
		if strings.Contains(l, r.match) {
			_, err = io.WriteString(c.out, r.pen+strings.TrimSuffix(s, "\n")+penNormal+"\n")
			if err != nil {
				return 0, err
			}
			return len(p), nil
		}
	}

	return c.out.Write(p)
}
