package ui

import (
	"encoding/hex"

	"github.com/atotto/clipboard"
)

// CopyRecordHex copies the record bytes to the system clipboard as a
// continuous hex string.
func CopyRecordHex(data []byte) error {
	return clipboard.WriteAll(hex.EncodeToString(data))
}
