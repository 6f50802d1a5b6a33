// Package server implements a device emulator for the write-record
// protocol: a TCP endpoint that accepts command envelopes, stores payloads
// in an emulated memory window and answers with status codes. It exists so
// injection can be exercised without hardware.
package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/jmassara/pkmforge/internal/inject"
	"github.com/jmassara/pkmforge/internal/logging"
	"github.com/jmassara/pkmforge/internal/pkm"
)

// Config configures the emulator.
type Config struct {
	ListenIP string
	Port     int

	// MemoryBase and MemorySize bound the writable address window.
	MemoryBase uint64
	MemorySize uint64

	// VerifyChecksums rejects payloads whose record checksum does not
	// verify, the way the real device sanity-checks injected records.
	VerifyChecksums bool
}

// DefaultConfig returns the emulator defaults: loopback only, a window
// covering the usual party-slot addresses, checksum verification on.
func DefaultConfig() Config {
	return Config{
		ListenIP:        "127.0.0.1",
		Port:            6000,
		MemoryBase:      0x04000000,
		MemorySize:      0x04000000,
		VerifyChecksums: true,
	}
}

// Server is the emulator instance.
type Server struct {
	config   Config
	logger   *logging.Logger
	listener *net.TCPListener
	wg       sync.WaitGroup
	done     chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	writes map[uint64][]byte
	conns  map[net.Conn]struct{}
}

// NewServer creates an emulator with the given configuration.
func NewServer(cfg Config, logger *logging.Logger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		done:   make(chan struct{}),
		writes: make(map[uint64][]byte),
		conns:  make(map[net.Conn]struct{}),
	}
}

// Start binds the listener and begins accepting connections.
func (s *Server) Start() error {
	tcpAddr, err := net.ResolveTCPAddr("tcp", fmt.Sprintf("%s:%d", s.config.ListenIP, s.config.Port))
	if err != nil {
		return fmt.Errorf("resolve TCP address: %w", err)
	}

	s.listener, err = net.ListenTCP("tcp", tcpAddr)
	if err != nil {
		return fmt.Errorf("listen TCP: %w", err)
	}

	s.logger.Info("device emulator listening on %s", s.listener.Addr())

	s.wg.Add(1)
	go s.acceptLoop()

	return nil
}

// Addr returns the bound TCP address after Start. Tests bind port 0 and
// read the assigned port from here.
func (s *Server) Addr() *net.TCPAddr {
	if s.listener == nil {
		return nil
	}
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr
	}
	return nil
}

// Stop closes the listener and waits for in-flight connections. Safe to
// call more than once.
func (s *Server) Stop() error {
	s.stopOnce.Do(func() {
		close(s.done)
		if s.listener != nil {
			s.listener.Close()
		}
		s.mu.Lock()
		for conn := range s.conns {
			conn.Close()
		}
		s.mu.Unlock()
		s.wg.Wait()
		s.logger.Info("device emulator stopped")
	})
	return nil
}

// Peek returns a copy of the bytes last written at address, if any.
func (s *Server) Peek(address uint64) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.writes[address]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// WriteCount returns the number of distinct addresses written.
func (s *Server) WriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
			}
			s.logger.Error("accept: %v", err)
			return
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(conn)
		}()
	}
}

// handleConn serves envelopes on one connection until the peer closes it
// or framing breaks down.
func (s *Server) handleConn(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
	}()
	remote := conn.RemoteAddr().String()
	s.logger.Verbose("connection from %s", remote)

	header := make([]byte, inject.HeaderLen)
	for {
		if _, err := io.ReadFull(conn, header); err != nil {
			if !errors.Is(err, io.EOF) {
				s.logger.Verbose("%s: read header: %v", remote, err)
			}
			return
		}

		cmd, addr, length, err := inject.DecodeHeader(header)
		if err != nil {
			s.respond(conn, remote, inject.StatusBadCommand)
			return
		}
		if cmd != inject.CommandWriteRecord {
			s.logger.Info("%s: unknown command 0x%08X", remote, cmd)
			s.respond(conn, remote, inject.StatusBadCommand)
			return
		}
		// Framing depends on the declared length; anything but a
		// record-sized payload ends the session.
		if length != pkm.RecordLen {
			s.logger.Info("%s: payload length %d, want %d", remote, length, pkm.RecordLen)
			s.respond(conn, remote, inject.StatusBadLength)
			return
		}

		payload := make([]byte, length)
		if _, err := io.ReadFull(conn, payload); err != nil {
			s.logger.Verbose("%s: read payload: %v", remote, err)
			return
		}

		status := s.applyWrite(addr, payload)
		s.logger.LogInjection(remote, addr, int(length), status)
		if !s.respond(conn, remote, status) {
			return
		}
	}
}

// applyWrite validates the write and stores the payload on success.
func (s *Server) applyWrite(addr uint64, payload []byte) uint32 {
	// Compare window offsets rather than end addresses, so a write near
	// the top of the address space cannot wrap past the bounds check.
	size := uint64(len(payload))
	if size > s.config.MemorySize || addr < s.config.MemoryBase ||
		addr-s.config.MemoryBase > s.config.MemorySize-size {
		return inject.StatusBadAddress
	}
	if s.config.VerifyChecksums {
		if _, err := pkm.Decode(payload); err != nil {
			return inject.StatusBadChecksum
		}
	}

	stored := make([]byte, len(payload))
	copy(stored, payload)
	s.mu.Lock()
	s.writes[addr] = stored
	s.mu.Unlock()
	return inject.StatusOK
}

func (s *Server) respond(conn net.Conn, remote string, status uint32) bool {
	if _, err := conn.Write(inject.EncodeAck(status)); err != nil {
		s.logger.Verbose("%s: write ack: %v", remote, err)
		return false
	}
	return true
}
