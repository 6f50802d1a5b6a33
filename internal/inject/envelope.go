package inject

// Wire envelope for the write-record command. All fields are little-endian,
// matching the record payload.
//
//	offset 0  u32  command tag
//	offset 4  u64  destination address in device memory
//	offset 12 u32  payload length
//	offset 16 ...  payload
//
// The device answers every envelope with a single u32 status; zero
// acknowledges the write.

import (
	"encoding/binary"
	"fmt"
)

const (
	// CommandWriteRecord tags an envelope as a "write record at
	// address" operation ("POKE" read little-endian off the wire).
	CommandWriteRecord uint32 = 0x454B4F50

	// HeaderLen is the fixed envelope header size.
	HeaderLen = 16

	// AckLen is the fixed response size.
	AckLen = 4
)

// Device status codes carried in the acknowledgement.
const (
	StatusOK          uint32 = 0x00000000
	StatusBadCommand  uint32 = 0x00000001
	StatusBadLength   uint32 = 0x00000002
	StatusBadAddress  uint32 = 0x00000003
	StatusBadChecksum uint32 = 0x00000004
)

// Envelope is one write-record command.
type Envelope struct {
	Command uint32
	Address uint64
	Payload []byte
}

// EncodeEnvelope serializes an envelope for transmission.
func EncodeEnvelope(e Envelope) []byte {
	buf := make([]byte, HeaderLen+len(e.Payload))
	binary.LittleEndian.PutUint32(buf[0:4], e.Command)
	binary.LittleEndian.PutUint64(buf[4:12], e.Address)
	binary.LittleEndian.PutUint32(buf[12:16], uint32(len(e.Payload)))
	copy(buf[HeaderLen:], e.Payload)
	return buf
}

// DecodeHeader parses the fixed envelope header, returning the declared
// payload length. The payload itself is read separately by the caller.
func DecodeHeader(b []byte) (cmd uint32, addr uint64, length uint32, err error) {
	if len(b) < HeaderLen {
		return 0, 0, 0, fmt.Errorf("inject: header is %d bytes, want %d", len(b), HeaderLen)
	}
	cmd = binary.LittleEndian.Uint32(b[0:4])
	addr = binary.LittleEndian.Uint64(b[4:12])
	length = binary.LittleEndian.Uint32(b[12:16])
	return cmd, addr, length, nil
}

// EncodeAck serializes a device status response.
func EncodeAck(status uint32) []byte {
	buf := make([]byte, AckLen)
	binary.LittleEndian.PutUint32(buf, status)
	return buf
}

// DecodeAck parses a device status response.
func DecodeAck(b []byte) (uint32, error) {
	if len(b) != AckLen {
		return 0, fmt.Errorf("inject: ack is %d bytes, want %d", len(b), AckLen)
	}
	return binary.LittleEndian.Uint32(b), nil
}

// StatusName returns a display name for a device status code.
func StatusName(status uint32) string {
	switch status {
	case StatusOK:
		return "OK"
	case StatusBadCommand:
		return "BAD_COMMAND"
	case StatusBadLength:
		return "BAD_LENGTH"
	case StatusBadAddress:
		return "BAD_ADDRESS"
	case StatusBadChecksum:
		return "BAD_CHECKSUM"
	default:
		return fmt.Sprintf("UNKNOWN(0x%08X)", status)
	}
}
