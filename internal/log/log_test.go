package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Debug("resolving region", "region", "us-west-2")

	out := buf.String()
	if !strings.Contains(out, "resolving region") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, "region=us-west-2") {
		t.Errorf("output %q missing attribute", out)
	}
}

func TestDefaultDiscards(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Error("should not appear")

	if buf.Len() != 0 {
		t.Errorf("discard logger wrote output: %q", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	With("role_arn", "arn:aws:iam::123456789012:role/MyRole").Warn("assume role retry")

	out := buf.String()
	if !strings.Contains(out, "role_arn=") {
		t.Errorf("output %q missing bound attribute", out)
	}
}
