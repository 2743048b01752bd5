package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerLevelAndAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info("hidden")
	log.With("id", 3).Warn("article failed", "err", "boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "article failed") || !strings.Contains(out, "id=3") || !strings.Contains(out, "err=boom") {
		t.Errorf("unexpected output %q", out)
	}

	log.SetLevel("debug")
	log.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("debug record missing after SetLevel")
	}
}
