package inject

// Transport abstraction for the device stream connection.

import (
	"context"
	"fmt"
	"io"
	"net"
	"sync"
	"time"
)

// Transport is one stream connection to the device.
type Transport interface {
	Connect(ctx context.Context, addr string) error
	Disconnect() error
	Send(ctx context.Context, data []byte) error
	// Receive reads exactly n bytes, waiting at most timeout.
	Receive(ctx context.Context, timeout time.Duration, n int) ([]byte, error)
	IsConnected() bool
}

// TCPTransport implements Transport over TCP.
type TCPTransport struct {
	conn        net.Conn
	connMu      sync.RWMutex
	dialTimeout time.Duration
}

var _ Transport = (*TCPTransport)(nil)

// NewTCPTransport creates a TCP transport. dialTimeout bounds connection
// establishment; there is no retry loop.
func NewTCPTransport(dialTimeout time.Duration) *TCPTransport {
	return &TCPTransport{dialTimeout: dialTimeout}
}

// Connect establishes the TCP connection. It fails fast if the endpoint
// refuses.
func (t *TCPTransport) Connect(ctx context.Context, addr string) error {
	t.connMu.Lock()
	defer t.connMu.Unlock()

	if t.conn != nil {
		return fmt.Errorf("already connected")
	}

	dialer := net.Dialer{Timeout: t.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	t.conn = conn
	return nil
}

// Disconnect closes the connection. Safe to call repeatedly; closing
// unblocks any pending read, which is how cancellation works.
func (t *TCPTransport) Disconnect() error {
	t.connMu.Lock()
	defer t.connMu.Unlock()

	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}

// Send writes data as one logical send.
func (t *TCPTransport) Send(ctx context.Context, data []byte) error {
	t.connMu.RLock()
	defer t.connMu.RUnlock()

	if t.conn == nil {
		return fmt.Errorf("not connected")
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := t.conn.SetWriteDeadline(deadline); err != nil {
			return fmt.Errorf("set write deadline: %w", err)
		}
	}
	_, err := t.conn.Write(data)
	return err
}

// Receive reads exactly n bytes from the connection.
func (t *TCPTransport) Receive(ctx context.Context, timeout time.Duration, n int) ([]byte, error) {
	t.connMu.RLock()
	defer t.connMu.RUnlock()

	if t.conn == nil {
		return nil, fmt.Errorf("not connected")
	}

	deadline := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := t.conn.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set read deadline: %w", err)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(t.conn, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// IsConnected reports whether the transport holds an open connection.
func (t *TCPTransport) IsConnected() bool {
	t.connMu.RLock()
	defer t.connMu.RUnlock()
	return t.conn != nil
}
