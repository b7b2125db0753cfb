package crypto

import "encoding/binary"

// Checksum16 returns the wrapping sum of the little-endian 16-bit words of data.
// A trailing odd byte is ignored.
func Checksum16(data []byte) uint16 {
	var sum uint16
	for i := 0; i+1 < len(data); i += 2 {
		sum += binary.LittleEndian.Uint16(data[i:])
	}
	return sum
}
