package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/nerrad567/device-inventory/internal/infrastructure/config"
)

func TestNew_Outputs(t *testing.T) {
	for _, output := range []string{"stdout", "stderr", "discard", ""} {
		t.Run(output, func(t *testing.T) {
			logger := New(config.LoggingConfig{Level: "info", Format: "json", Output: output}, "1.0.0")
			if logger == nil {
				t.Fatal("expected non-nil logger")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewWithWriter_JSONDefaultFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, "test-version", &buf)

	logger.Info("device created", "id", "dev-1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if entry["service"] != ServiceName {
		t.Errorf("service = %v, want %q", entry["service"], ServiceName)
	}
	if entry["version"] != "test-version" {
		t.Errorf("version = %v, want test-version", entry["version"])
	}
	if entry["msg"] != "device created" {
		t.Errorf("msg = %v, want 'device created'", entry["msg"])
	}
	if entry["id"] != "dev-1" {
		t.Errorf("id = %v, want dev-1", entry["id"])
	}
}

func TestNewWithWriter_TextAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "warn", Format: "text"}, "v", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("expected text-format warn entry, got %q", out)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, "v", &buf)
	child := logger.With("component", "api")

	if child == logger {
		t.Error("expected child logger to be different from parent")
	}

	child.Info("listening")
	if !strings.Contains(buf.String(), `"component":"api"`) {
		t.Errorf("child entry missing component field: %s", buf.String())
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("expected non-nil default logger")
	}
}
