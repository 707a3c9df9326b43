package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("scan.workers", "must be positive")
	if !strings.Contains(err.Error(), "scan.workers") {
		t.Errorf("expected field in message, got %q", err.Error())
	}

	bare := NewConfigError("", "failed to load config")
	if strings.Contains(bare.Error(), "in :") {
		t.Errorf("empty field should be omitted, got %q", bare.Error())
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewCommandError("scan", cause)

	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
	if !strings.Contains(err.Error(), "scan") {
		t.Errorf("expected command name in message, got %q", err.Error())
	}
}
