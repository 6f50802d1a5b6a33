// Package inject frames an encoded record inside a write-record envelope,
// transmits it to a device over a stream connection, and interprets the
// acknowledgement.
package inject

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/jmassara/pkmforge/internal/pkm"
)

// Options configures a Client.
type Options struct {
	DialTimeout     time.Duration // bound on connection establishment
	ResponseTimeout time.Duration // bound on the acknowledgement wait
}

// DefaultOptions returns the default client timeouts.
func DefaultOptions() Options {
	return Options{
		DialTimeout:     5 * time.Second,
		ResponseTimeout: 5 * time.Second,
	}
}

// Exchange records the raw bytes of one injection for logging or capture.
type Exchange struct {
	Endpoint string
	Address  uint64
	Request  []byte
	Response []byte
}

// Client performs single-exchange record injections. Each Inject call
// acquires its own connection and releases it on every exit path; the
// client holds no connection between calls and never retries (injection
// is not safe to auto-retry against arbitrary device state).
type Client struct {
	opts         Options
	newTransport func() Transport
}

// NewClient creates an injection client.
func NewClient(opts Options) *Client {
	return &Client{
		opts:         opts,
		newTransport: func() Transport { return NewTCPTransport(opts.DialTimeout) },
	}
}

// Inject frames record inside a write-record envelope, sends it to endpoint
// (host:port) and waits for the acknowledgement. The returned Exchange
// carries the raw request, and the raw response when one arrived, even on
// error. Failures surface as ConnectionError, TimeoutError or ProtocolError.
func (c *Client) Inject(ctx context.Context, endpoint string, address uint64, record []byte) (*Exchange, error) {
	if len(record) != pkm.RecordLen {
		return nil, pkm.FormatError{Length: len(record)}
	}

	ex := &Exchange{
		Endpoint: endpoint,
		Address:  address,
		Request: EncodeEnvelope(Envelope{
			Command: CommandWriteRecord,
			Address: address,
			Payload: record,
		}),
	}

	transport := c.newTransport()
	if err := transport.Connect(ctx, endpoint); err != nil {
		return ex, ConnectionError{Endpoint: endpoint, Op: "dial", Err: err}
	}
	defer transport.Disconnect()

	if err := transport.Send(ctx, ex.Request); err != nil {
		return ex, ConnectionError{Endpoint: endpoint, Op: "send", Err: err}
	}

	resp, err := transport.Receive(ctx, c.opts.ResponseTimeout, AckLen)
	if err != nil {
		return ex, classifyReceiveError(endpoint, c.opts.ResponseTimeout, err)
	}
	ex.Response = resp

	status, err := DecodeAck(resp)
	if err != nil {
		return ex, ProtocolError{Endpoint: endpoint, Reason: err.Error()}
	}
	if status != StatusOK {
		return ex, ProtocolError{Endpoint: endpoint, Reason: "device rejected write", Status: status}
	}
	return ex, nil
}

// classifyReceiveError maps a transport read failure onto the error
// taxonomy: bounded-wait expiry is a timeout, a connection that closed with
// no bytes at all is a connection failure, and a partial response is a
// protocol violation.
func classifyReceiveError(endpoint string, wait time.Duration, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return TimeoutError{Endpoint: endpoint, Wait: wait}
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return ProtocolError{Endpoint: endpoint, Reason: "short response"}
	}
	return ConnectionError{Endpoint: endpoint, Op: "receive", Err: err}
}
