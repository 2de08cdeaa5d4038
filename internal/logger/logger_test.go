package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Fatalf("ParseLevel(%q): got %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestTextLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Text(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Warn("visible", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered: %s", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "key=value") {
		t.Fatalf("warn message missing: %s", out)
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Text(&buf, slog.LevelInfo)
	ctx := WithContext(context.Background(), log)

	FromContext(ctx).Info("through context")
	if !strings.Contains(buf.String(), "through context") {
		t.Fatalf("context logger not used: %s", buf.String())
	}
}

func TestWithAddsAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Text(&buf, slog.LevelInfo).With("component", "test")
	log.Info("hello")
	if !strings.Contains(buf.String(), "component=test") {
		t.Fatalf("With attribute missing: %s", buf.String())
	}
}
