package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUserFriendlyErrorFormat(t *testing.T) {
	err := UserFriendlyError{
		Message: "Failed",
		Reason:  "because",
		Hint:    "hint",
		Try:     "try this",
		Err:     fmt.Errorf("root cause"),
	}
	out := err.Error()
	for _, want := range []string{"Failed", "Reason: because", "Hint: hint", "Try: try this", "Details: root cause"} {
		if !strings.Contains(out, want) {
			t.Errorf("error output missing %q:\n%s", want, out)
		}
	}
}

func TestUnwrap(t *testing.T) {
	root := fmt.Errorf("root")
	wrapped := WrapInjectionError(root, "127.0.0.1:6000")
	if !errors.Is(wrapped, root) {
		t.Error("wrapped error should unwrap to the root cause")
	}
}

func TestWrapNil(t *testing.T) {
	if WrapInjectionError(nil, "x") != nil {
		t.Error("WrapInjectionError(nil) should be nil")
	}
	if WrapRecordError(nil, "x") != nil {
		t.Error("WrapRecordError(nil) should be nil")
	}
	if WrapConfigError(nil, "x") != nil {
		t.Error("WrapConfigError(nil) should be nil")
	}
}

func TestNetworkReasons(t *testing.T) {
	cases := []struct {
		err  string
		want string
	}{
		{"dial tcp: connection refused", "Connection refused"},
		{"read tcp: i/o timeout, deadline exceeded", "timeout"},
		{"inject: no response from host within 5s", "timeout"},
		{"read tcp: connection reset by peer", "Connection closed"},
	}
	for _, c := range cases {
		wrapped := WrapInjectionError(fmt.Errorf("%s", c.err), "h:1")
		if !strings.Contains(strings.ToLower(wrapped.Error()), strings.ToLower(c.want)) {
			t.Errorf("wrap of %q missing reason %q:\n%s", c.err, c.want, wrapped.Error())
		}
	}
}

func TestRecordReasons(t *testing.T) {
	wrapped := WrapRecordError(fmt.Errorf("pkm: checksum mismatch: stored 0x0001, computed 0x0002"), "party.pk8")
	if !strings.Contains(wrapped.Error(), "corrupt") {
		t.Errorf("checksum reason missing:\n%s", wrapped.Error())
	}
	wrapped = WrapRecordError(fmt.Errorf("pkm: record is 10 bytes, want 344"), "party.pk8")
	if !strings.Contains(wrapped.Error(), "wrong size") {
		t.Errorf("size reason missing:\n%s", wrapped.Error())
	}
}
