package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		wantJSON bool
	}{
		{"json", FormatJSON, true},
		{"text", FormatText, false},
		{"unknown falls back to text", Format("xml"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: slog.LevelInfo, Format: tt.format, Output: &buf})

			logger.Info("generated default config", "path", "qqbot.cfg", "overwrite", false)

			var parsed map[string]any
			isJSON := json.Unmarshal(buf.Bytes(), &parsed) == nil
			if isJSON != tt.wantJSON {
				t.Fatalf("JSON output = %v, want %v: %q", isJSON, tt.wantJSON, buf.String())
			}
			if isJSON {
				if parsed["msg"] != "generated default config" || parsed["path"] != "qqbot.cfg" {
					t.Errorf("unexpected JSON record: %v", parsed)
				}
				return
			}
			for _, want := range []string{"INFO", "generated default config", "path=qqbot.cfg", "overwrite=false"} {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("text output missing %q: %q", want, buf.String())
				}
			}
		})
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("default logger should not emit Info")
	}
	if !logger.Enabled(t.Context(), slog.LevelWarn) {
		t.Error("default logger should emit Warn")
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	logger.Error("dropped", "path", "qqbot.cfg")
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("test logger should emit Debug")
	}
	logger.Debug("reading config", "path", "qqbot.cfg")
}

func TestTestWriter_ReportsFullLength(t *testing.T) {
	tw := &testWriter{t: t}
	for _, in := range []string{"line\n", "no newline", ""} {
		n, err := tw.Write([]byte(in))
		if err != nil || n != len(in) {
			t.Errorf("Write(%q) = %d, %v; want %d, nil", in, n, err, len(in))
		}
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}

	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	ctx := NewContext(t.Context(), logger)
	FromContext(ctx).Info("from context", "path", "qqbot.cfg")

	if !strings.Contains(buf.String(), "path=qqbot.cfg") {
		t.Errorf("expected message from context logger, got: %q", buf.String())
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if got := FromContext(t.Context()); got != slog.Default() {
		t.Error("FromContext without a logger should return slog.Default()")
	}
}

// unsetEnv removes keys for the duration of t. Call t.Setenv on each key
// first so the original values are restored.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if err := os.Unsetenv(k); err != nil {
			t.Fatal(err)
		}
	}
}
