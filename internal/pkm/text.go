package pkm

// Fixed-width text blocks. Names are stored as 16-bit little-endian code
// units from the game's character table (BMP code points map 1:1), padded
// to full width with the 0x0000 terminator.

import (
	"encoding/binary"
	"unicode/utf16"
)

const textTerminator uint16 = 0x0000

// encodeText writes s into dst as units 16-bit code units. Content longer
// than units-1 characters is truncated; the block is always terminated and
// padded with the terminator. Characters outside the table (non-BMP code
// points) are rejected.
func encodeText(dst []byte, s string, units int, field string) error {
	if len(dst) < units*2 {
		panic("pkm: text block destination too small")
	}
	i := 0
	for _, r := range s {
		if i >= units-1 {
			break
		}
		if r > 0xFFFF || utf16.IsSurrogate(r) {
			return ValidationError{Field: field, Reason: "character not representable in the record character table"}
		}
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(r))
		i++
	}
	for ; i < units; i++ {
		binary.LittleEndian.PutUint16(dst[i*2:], textTerminator)
	}
	return nil
}

// decodeText reads up to units code units from src, stopping at the first
// terminator. A block with no terminator yields a full-width name.
func decodeText(src []byte, units int) string {
	out := make([]rune, 0, units)
	for i := 0; i < units; i++ {
		u := binary.LittleEndian.Uint16(src[i*2:])
		if u == textTerminator {
			break
		}
		out = append(out, rune(u))
	}
	return string(out)
}
