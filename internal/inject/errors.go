package inject

import (
	"fmt"
	"time"
)

// ConnectionError reports that the stream connection could not be
// established or broke before a response arrived.
type ConnectionError struct {
	Endpoint string
	Op       string // "dial", "send", "receive"
	Err      error
}

func (e ConnectionError) Error() string {
	return fmt.Sprintf("inject: %s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e ConnectionError) Unwrap() error { return e.Err }

// TimeoutError reports that no response arrived within the bounded wait.
type TimeoutError struct {
	Endpoint string
	Wait     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("inject: no response from %s within %s", e.Endpoint, e.Wait)
}

// ProtocolError reports an unexpected or malformed device response.
type ProtocolError struct {
	Endpoint string
	Reason   string
	Status   uint32 // device status when Reason is "device rejected write"
}

func (e ProtocolError) Error() string {
	if e.Reason == "device rejected write" {
		return fmt.Sprintf("inject: %s: device responded %s", e.Endpoint, StatusName(e.Status))
	}
	return fmt.Sprintf("inject: %s: %s", e.Endpoint, e.Reason)
}
