package pkm

import "testing"

func TestSumEmpty(t *testing.T) {
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = 0x%04X, want 0", got)
	}
}

func TestSumWords(t *testing.T) {
	// Words are read little-endian: 0x0201 + 0x0403.
	data := []byte{0x01, 0x02, 0x03, 0x04}
	if got, want := Sum(data), uint16(0x0201+0x0403); got != want {
		t.Errorf("Sum = 0x%04X, want 0x%04X", got, want)
	}
}

func TestSumWraparound(t *testing.T) {
	// 0xFFFF + 0x0002 wraps to 0x0001 with no carry propagation.
	data := []byte{0xFF, 0xFF, 0x02, 0x00}
	if got := Sum(data); got != 0x0001 {
		t.Errorf("Sum = 0x%04X, want 0x0001", got)
	}
}

func TestSumOddTail(t *testing.T) {
	// A trailing odd byte contributes as the low byte of a final word.
	if got, want := Sum([]byte{0x01, 0x00, 0x05}), uint16(0x0006); got != want {
		t.Errorf("Sum = 0x%04X, want 0x%04X", got, want)
	}
}

func TestSumDeterministic(t *testing.T) {
	data := make([]byte, RecordLen)
	for i := range data {
		data[i] = byte(i * 7)
	}
	first := Sum(data)
	for i := 0; i < 10; i++ {
		if got := Sum(data); got != first {
			t.Fatalf("Sum not deterministic: 0x%04X then 0x%04X", first, got)
		}
	}
}
