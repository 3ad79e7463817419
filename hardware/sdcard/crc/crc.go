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

package crc

// generator polynomial for CRC7, shifted into bits 7..1.
const generator = 0x89

// CRC7 advances the running CRC7 value by one byte.
func CRC7(crc uint8, data uint8) uint8 {
	crc ^= data
	for i := 0; i < 8; i++ {
		if crc&0x80 == 0x80 {
			crc ^= generator
		}
		crc <<= 1
	}
	return crc
}

// CRC16 advances the running CRC16-CCITT value by one byte. The initial
// value is zero and there is no final XOR.
func CRC16(crc uint16, data uint8) uint16 {
	crc = crc>>8 | crc<<8
	crc ^= uint16(data)
	crc ^= (crc & 0xff) >> 4
	crc ^= crc << 12
	crc ^= (crc & 0xff) << 5
	return crc
}

// CommandCRC returns the CRC7 of a command or response frame. The cmd value
// is the whole leading byte of the frame, including the start and
// transmission bits. The argument is consumed most significant byte first.
func CommandCRC(cmd uint8, arg uint32) uint8 {
	crc := CRC7(0, cmd)
	for i := 3; i >= 0; i-- {
		crc = CRC7(crc, uint8(arg>>(i*8)))
	}
	return crc
}

// BytesCRC returns the CRC7 of a byte slice.
func BytesCRC(data []byte) uint8 {
	var crc uint8
	for _, d := range data {
		crc = CRC7(crc, d)
	}
	return crc
}
