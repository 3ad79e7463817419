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

// Package scenario runs Lua scripts that drive a simulation session through
// the host package. Scripts describe the stimulus that the controller under
// test would otherwise provide.
//
// The following functions are available to scripts:
//
//	cmd(index, arg)                  send command. returns response argument and index, or nil and an error string
//	cid()                            returns the card identification as a hex string
//	read_block(arg)                  returns payload as a string and whether the trailer was correct
//	write_block(arg, data, corrupt)  data is a string or a fill byte. returns number of busy edges
//	mem_write(addr, data, sel)       write 16-bit word. sel defaults to both bytes
//	mem_read(addr)                   read 16-bit word
//	idle(n)                          run SD clock for n cycles
//	cycles(n)                        run main clock for n cycles
//	log(msg)                         add entry to log
//	elapsed()                        simulated time in milliseconds
//	problems()                       number of problems found so far
//	selector(drive, block)           block argument addressing a single drive
//	mounted(drive)                   whether an image is bound to the drive
//
// An error raised by a script, with the Lua error() function or otherwise,
// stops the script and is returned as a curated error.
package scenario
