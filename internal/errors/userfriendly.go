package errors

import (
	"fmt"
	"strings"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapInjectionError wraps injection failures with user-friendly context.
func WrapInjectionError(err error, endpoint string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to inject record into device at %s", endpoint),
		Reason:  extractNetworkReason(err),
		Hint:    "The device must be running the remote-control service and reachable from this machine",
		Try:     fmt.Sprintf("pkmforge serve   # then inject against the local emulator instead of %s", endpoint),
		Err:     err,
	}
}

// WrapRecordError wraps encode/decode failures with user-friendly context.
func WrapRecordError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Record error in %s", path),
		Reason:  extractRecordReason(err),
		Hint:    "Use --lenient to inspect a corrupted record anyway",
		Try:     fmt.Sprintf("pkmforge read --file %s --lenient --hex", path),
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context.
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "All fields are optional; missing ones fall back to built-in defaults",
		Try:     "Remove the config file to fall back to built-in defaults",
		Err:     err,
	}
}

func extractNetworkReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") || strings.Contains(errStr, "no response") {
		return "No response within the timeout - device may be offline or busy"
	}
	if strings.Contains(errStr, "connection refused") {
		return "Connection refused - nothing is listening on this port"
	}
	if strings.Contains(errStr, "no route to host") {
		return "No route to host - network routing issue or device unreachable"
	}
	if strings.Contains(errStr, "connection reset") || strings.Contains(errStr, "EOF") {
		return "Connection closed - device dropped the session before acknowledging"
	}
	if strings.Contains(errStr, "device responded") {
		return "Device rejected the write - see the status code in the details"
	}

	return "Network communication failed"
}

func extractRecordReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "checksum mismatch") {
		return "Stored checksum does not match the record contents - the file is corrupt or truncated mid-edit"
	}
	if strings.Contains(errStr, "bytes, want") {
		return "File is not a single record - wrong size"
	}
	if strings.Contains(errStr, "invalid") {
		return "A field value is out of range or a code is not in the lookup tables"
	}

	return "Record could not be processed"
}
