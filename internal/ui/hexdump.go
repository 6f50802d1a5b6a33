package ui

// Hex dump utilities for record inspection

import (
	"fmt"
	"strings"
)

// HexDump creates a hex dump of raw bytes
func HexDump(data []byte, width int) string {
	if width <= 0 {
		width = 16
	}

	var sb strings.Builder
	for i := 0; i < len(data); i += width {
		// Offset
		sb.WriteString(fmt.Sprintf("%04x: ", i))

		// Hex bytes
		for j := 0; j < width; j++ {
			if i+j < len(data) {
				sb.WriteString(fmt.Sprintf("%02x ", data[i+j]))
			} else {
				sb.WriteString("   ")
			}
		}

		// ASCII representation
		sb.WriteString(" |")
		for j := 0; j < width && i+j < len(data); j++ {
			b := data[i+j]
			if b >= 32 && b < 127 {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

// FormatRecordHex formats a record buffer as a hex dump with optional
// header annotation. The first 8 bytes hold the encryption constant,
// sanity word and checksum; the checksum span starts at 0x08.
func FormatRecordHex(data []byte, annotate bool) string {
	if !annotate || len(data) < 8 {
		return HexDump(data, 16)
	}

	var sb strings.Builder
	sb.WriteString("Header (8 bytes):\n")
	sb.WriteString(HexDump(data[0:8], 16))

	sb.WriteString("\nChecksummed data:\n")
	sb.WriteString(HexDump(data[8:], 16))

	return sb.String()
}
