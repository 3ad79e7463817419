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

package scenario

// DefaultScript initialises the card, reads the first block of every drive
// that has been mounted and then runs a short memory test. It is used when no
// script file is specified.
const DefaultScript = `
log("waiting for mount")
cycles(1200)

local function must(index, arg)
	local r, err = cmd(index, arg)
	if r == nil then
		error(err)
	end
	return r
end

-- GO_IDLE_STATE has no response
cmd(0, 0)
must(8, 0x1aa)
must(55, 0)
must(41, 0x40300000)
local id = cid()
local rca = must(3, 0)
must(7, rca)
must(55, rca)
must(6, 2)
must(16, 512)
log(string.format("card identification %s", id))

for drive = 0, 3 do
	if mounted(drive) then
		local _, good = read_block(selector(drive, 0))
		log(string.format("drive %d: block 0 trailer %s", drive, good and "ok" or "bad"))
	end
end

for addr = 0, 0xff do
	mem_write(addr * 0x1001, addr * 0x0101)
end
for addr = 0, 0xff do
	local v = mem_read(addr * 0x1001)
	if v ~= addr * 0x0101 then
		error(string.format("memory test failed at %06x: %04x", addr * 0x1001, v))
	end
end

log(string.format("finished after %.3fms with %d problems", elapsed(), problems()))
`
