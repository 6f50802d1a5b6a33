package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/jmassara/pkmforge/internal/gamedata"
	"github.com/jmassara/pkmforge/internal/inject"
	"github.com/jmassara/pkmforge/internal/logging"
	"github.com/jmassara/pkmforge/internal/pkm"
)

func startTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	logger, err := logging.NewLogger(logging.LogLevelSilent, "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	t.Cleanup(func() { logger.Close() })

	cfg.ListenIP = "127.0.0.1"
	cfg.Port = 0
	srv := NewServer(cfg, logger)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { srv.Stop() })
	return srv
}

func encodedTestRecord(t *testing.T) []byte {
	t.Helper()
	r := pkm.Record{
		Species:  25,
		PID:      0x12345678,
		TID:      12345,
		SID:      54321,
		EXP:      1000,
		Level:    5,
		Nature:   15,
		Moves:    [4]uint16{5, 0, 0, 0},
		Nickname: "Pikachu",
		OTName:   "Ash",
		Ball:     4,
	}
	buf, err := pkm.Encode(r, pkm.Codebook{
		Species:   gamedata.Species,
		Items:     gamedata.Items,
		Moves:     gamedata.Moves,
		Abilities: gamedata.Abilities,
		Natures:   gamedata.Natures,
		Balls:     gamedata.BallItems,
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return buf
}

func testClient() *inject.Client {
	return inject.NewClient(inject.Options{
		DialTimeout:     time.Second,
		ResponseTimeout: time.Second,
	})
}

func TestInjectEndToEnd(t *testing.T) {
	cfg := DefaultConfig()
	srv := startTestServer(t, cfg)

	record := encodedTestRecord(t)
	address := cfg.MemoryBase + 0x2DA8E8

	_, err := testClient().Inject(context.Background(), srv.Addr().String(), address, record)
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}

	stored, ok := srv.Peek(address)
	if !ok {
		t.Fatal("server stored nothing at the target address")
	}
	if !bytes.Equal(stored, record) {
		t.Error("stored bytes differ from injected record")
	}
	if srv.WriteCount() != 1 {
		t.Errorf("write count = %d, want 1", srv.WriteCount())
	}
}

func TestServerRejectsBadAddress(t *testing.T) {
	cfg := DefaultConfig()
	srv := startTestServer(t, cfg)

	_, err := testClient().Inject(context.Background(), srv.Addr().String(), cfg.MemoryBase-1, encodedTestRecord(t))
	var pe inject.ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want ProtocolError", err)
	}
	if pe.Status != inject.StatusBadAddress {
		t.Errorf("status = %s, want BAD_ADDRESS", inject.StatusName(pe.Status))
	}
	if srv.WriteCount() != 0 {
		t.Error("rejected write must not be stored")
	}
}

func TestApplyWriteWindowBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VerifyChecksums = false
	logger, err := logging.NewLogger(logging.LogLevelSilent, "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	t.Cleanup(func() { logger.Close() })
	srv := NewServer(cfg, logger)

	payload := make([]byte, pkm.RecordLen)
	windowEnd := cfg.MemoryBase + cfg.MemorySize

	cases := []struct {
		name string
		addr uint64
		want uint32
	}{
		{"window start", cfg.MemoryBase, inject.StatusOK},
		{"last fit", windowEnd - uint64(len(payload)), inject.StatusOK},
		{"below window", cfg.MemoryBase - 1, inject.StatusBadAddress},
		{"straddles end", windowEnd - uint64(len(payload)) + 1, inject.StatusBadAddress},
		{"past end", windowEnd, inject.StatusBadAddress},
		// addr+len wraps around uint64; must still be rejected.
		{"wraps address space", 0xFFFFFFFFFFFFFF00, inject.StatusBadAddress},
	}
	for _, c := range cases {
		if got := srv.applyWrite(c.addr, payload); got != c.want {
			t.Errorf("%s: applyWrite(0x%X) = %s, want %s",
				c.name, c.addr, inject.StatusName(got), inject.StatusName(c.want))
		}
	}
}

func TestServerRejectsCorruptChecksum(t *testing.T) {
	cfg := DefaultConfig()
	srv := startTestServer(t, cfg)

	record := encodedTestRecord(t)
	record[0x10] ^= 0xFF // corrupt inside the checksummed span

	_, err := testClient().Inject(context.Background(), srv.Addr().String(), cfg.MemoryBase, record)
	var pe inject.ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want ProtocolError", err)
	}
	if pe.Status != inject.StatusBadChecksum {
		t.Errorf("status = %s, want BAD_CHECKSUM", inject.StatusName(pe.Status))
	}
}

func TestServerLenientMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VerifyChecksums = false
	srv := startTestServer(t, cfg)

	record := encodedTestRecord(t)
	record[0x10] ^= 0xFF

	_, err := testClient().Inject(context.Background(), srv.Addr().String(), cfg.MemoryBase, record)
	if err != nil {
		t.Fatalf("Inject with verification off: %v", err)
	}
}

func TestServerRejectsUnknownCommand(t *testing.T) {
	srv := startTestServer(t, DefaultConfig())

	// Drive the wire by hand: a valid-length envelope with a bogus tag.
	env := inject.EncodeEnvelope(inject.Envelope{
		Command: 0xDEADBEEF,
		Address: DefaultConfig().MemoryBase,
		Payload: make([]byte, pkm.RecordLen),
	})

	conn, err := newRawConn(srv.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write(env); err != nil {
		t.Fatalf("write: %v", err)
	}
	ack := make([]byte, inject.AckLen)
	if err := readFullDeadline(conn, ack, time.Second); err != nil {
		t.Fatalf("read ack: %v", err)
	}
	status, err := inject.DecodeAck(ack)
	if err != nil {
		t.Fatalf("DecodeAck: %v", err)
	}
	if status != inject.StatusBadCommand {
		t.Errorf("status = %s, want BAD_COMMAND", inject.StatusName(status))
	}
}

func newRawConn(addr string) (net.Conn, error) {
	return net.DialTimeout("tcp", addr, time.Second)
}

func readFullDeadline(conn net.Conn, buf []byte, d time.Duration) error {
	if err := conn.SetReadDeadline(time.Now().Add(d)); err != nil {
		return err
	}
	_, err := io.ReadFull(conn, buf)
	return err
}

func TestServerStopUnblocks(t *testing.T) {
	srv := startTestServer(t, DefaultConfig())
	done := make(chan struct{})
	go func() {
		srv.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop did not return")
	}
}
