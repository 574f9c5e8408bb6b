package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError_Error(t *testing.T) {
	err := NewConfigError("history.path", "must be set when history is enabled")
	want := "config error in history.path: must be set when history is enabled"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = NewConfigError("", "unreadable file")
	want = "config error: unreadable file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("validation failed")
	err := NewCommandError("check", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	want := "command check failed: validation failed"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
