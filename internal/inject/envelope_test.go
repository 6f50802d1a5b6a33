package inject

import (
	"bytes"
	"testing"
)

func TestEnvelopeEncodeDecode(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 344)
	e := Envelope{Command: CommandWriteRecord, Address: 0x042DA8E8, Payload: payload}

	wire := EncodeEnvelope(e)
	if len(wire) != HeaderLen+len(payload) {
		t.Fatalf("envelope length = %d, want %d", len(wire), HeaderLen+len(payload))
	}

	cmd, addr, length, err := DecodeHeader(wire)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if cmd != CommandWriteRecord {
		t.Errorf("command = 0x%08X, want 0x%08X", cmd, CommandWriteRecord)
	}
	if addr != 0x042DA8E8 {
		t.Errorf("address = 0x%X, want 0x042DA8E8", addr)
	}
	if int(length) != len(payload) {
		t.Errorf("length = %d, want %d", length, len(payload))
	}
	if !bytes.Equal(wire[HeaderLen:], payload) {
		t.Error("payload bytes differ")
	}
}

func TestEnvelopeHeaderLayout(t *testing.T) {
	wire := EncodeEnvelope(Envelope{Command: CommandWriteRecord, Address: 0x01, Payload: []byte{0xFF}})
	// Little-endian tag spells "POKE" on the wire.
	if !bytes.Equal(wire[0:4], []byte("POKE")) {
		t.Errorf("tag bytes = % X, want POKE", wire[0:4])
	}
	if wire[4] != 0x01 {
		t.Errorf("address low byte = 0x%02X, want 0x01", wire[4])
	}
	if wire[12] != 0x01 {
		t.Errorf("length low byte = 0x%02X, want 0x01", wire[12])
	}
}

func TestDecodeHeaderShort(t *testing.T) {
	if _, _, _, err := DecodeHeader(make([]byte, HeaderLen-1)); err == nil {
		t.Error("DecodeHeader should reject short headers")
	}
}

func TestAckRoundTrip(t *testing.T) {
	for _, status := range []uint32{StatusOK, StatusBadCommand, StatusBadLength, StatusBadAddress, StatusBadChecksum, 0xDEADBEEF} {
		got, err := DecodeAck(EncodeAck(status))
		if err != nil {
			t.Fatalf("DecodeAck(0x%08X): %v", status, err)
		}
		if got != status {
			t.Errorf("ack round trip 0x%08X -> 0x%08X", status, got)
		}
	}
	if _, err := DecodeAck([]byte{0x00}); err == nil {
		t.Error("DecodeAck should reject short responses")
	}
}

func TestStatusName(t *testing.T) {
	if got := StatusName(StatusOK); got != "OK" {
		t.Errorf("StatusName(OK) = %q", got)
	}
	if got := StatusName(0xFF); got == "" {
		t.Error("StatusName of unknown code should not be empty")
	}
}
