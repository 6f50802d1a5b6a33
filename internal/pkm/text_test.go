package pkm

import (
	"encoding/binary"
	"strings"
	"testing"
)

func TestTextEmptyName(t *testing.T) {
	block := make([]byte, nameUnits*2)
	if err := encodeText(block, "", nameUnits, "nickname"); err != nil {
		t.Fatalf("encodeText: %v", err)
	}
	for i, b := range block {
		if b != 0 {
			t.Fatalf("empty name block has nonzero byte at %d", i)
		}
	}
	if got := decodeText(block, nameUnits); got != "" {
		t.Errorf("decode of empty block = %q", got)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, name := range []string{"Ash", "Pikachu", "Nidoran♀", "abcdefghijkl"} {
		block := make([]byte, nameUnits*2)
		if err := encodeText(block, name, nameUnits, "nickname"); err != nil {
			t.Fatalf("encodeText(%q): %v", name, err)
		}
		if got := decodeText(block, nameUnits); got != name {
			t.Errorf("round trip %q -> %q", name, got)
		}
	}
}

func TestTextTruncation(t *testing.T) {
	long := strings.Repeat("a", MaxNameLen+5)
	block := make([]byte, nameUnits*2)
	if err := encodeText(block, long, nameUnits, "nickname"); err != nil {
		t.Fatalf("encodeText: %v", err)
	}
	got := decodeText(block, nameUnits)
	if len(got) != MaxNameLen {
		t.Errorf("truncated name length = %d, want %d", len(got), MaxNameLen)
	}
	// The last unit is always the terminator.
	if u := binary.LittleEndian.Uint16(block[(nameUnits-1)*2:]); u != 0 {
		t.Errorf("final unit = 0x%04X, want terminator", u)
	}
}

func TestTextFullWidthNoTerminator(t *testing.T) {
	// A block whose every unit is a character decodes to the full-width
	// name; the scan stops at the block boundary.
	block := make([]byte, nameUnits*2)
	for i := 0; i < nameUnits; i++ {
		binary.LittleEndian.PutUint16(block[i*2:], uint16('A'+i))
	}
	got := decodeText(block, nameUnits)
	if len(got) != nameUnits {
		t.Fatalf("full-width decode length = %d, want %d", len(got), nameUnits)
	}
	if got != "ABCDEFGHIJKLM" {
		t.Errorf("full-width decode = %q", got)
	}
}

func TestTextDecodeStopsAtTerminator(t *testing.T) {
	block := make([]byte, nameUnits*2)
	binary.LittleEndian.PutUint16(block[0:], 'X')
	// terminator at unit 1, garbage after it
	binary.LittleEndian.PutUint16(block[4:], 'Y')
	if got := decodeText(block, nameUnits); got != "X" {
		t.Errorf("decode = %q, want X", got)
	}
}

func TestTextRejectsNonBMP(t *testing.T) {
	block := make([]byte, nameUnits*2)
	err := encodeText(block, "ok\U0001F600", nameUnits, "nickname")
	if err == nil {
		t.Fatal("encodeText should reject code points outside the character table")
	}
	if _, ok := err.(ValidationError); !ok {
		t.Errorf("error = %T, want ValidationError", err)
	}
}
