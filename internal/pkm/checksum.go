package pkm

// 16-bit word-sum checksum used to validate stored records.

import "encoding/binary"

// Sum accumulates little-endian 16-bit words over data with wraparound
// (mod 65536) addition. A trailing odd byte contributes as the low byte of
// a final word. Pure function: same input, same output.
func Sum(data []byte) uint16 {
	var sum uint16
	n := len(data) &^ 1
	for i := 0; i < n; i += 2 {
		sum += binary.LittleEndian.Uint16(data[i : i+2])
	}
	if len(data)&1 != 0 {
		sum += uint16(data[len(data)-1])
	}
	return sum
}

// recordChecksum computes the checksum of a full record buffer over the
// checksummed span. buf must be RecordLen bytes.
func recordChecksum(buf []byte) uint16 {
	return Sum(buf[ChecksumSpanStart:RecordLen])
}
