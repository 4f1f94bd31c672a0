package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// readLogFile reads a log file and returns its lines
func readLogFile(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// TestFileLogger tests file-backed logging
func TestFileLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("TextFormat", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.log")
		logger, err := NewFileLogger(FileLoggerConfig{Path: path, Format: FormatText, Level: DebugLevel})
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}

		logger.Info(ctx, "hello", Fields{"key": "value"})
		logger.Close()

		lines := readLogFile(t, path)
		if len(lines) != 1 {
			t.Fatalf("log has %d lines, want 1", len(lines))
		}
		if !strings.Contains(lines[0], "[INFO]") || !strings.Contains(lines[0], "hello") {
			t.Errorf("log line = %q", lines[0])
		}
		if !strings.Contains(lines[0], "key=value") {
			t.Errorf("log line missing field: %q", lines[0])
		}
	})

	t.Run("JSONFormat", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.log")
		logger, err := NewFileLogger(FileLoggerConfig{Path: path, Format: FormatJSON, Level: DebugLevel})
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}

		logger.Error(ctx, "checksum failed", os.ErrPermission, Fields{"key": "broken.txt", "worker": 2})
		logger.Close()

		lines := readLogFile(t, path)
		if len(lines) != 1 {
			t.Fatalf("log has %d lines, want 1", len(lines))
		}

		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
			t.Fatalf("log line is not valid json: %v", err)
		}
		if entry["level"] != "ERROR" {
			t.Errorf("level = %v, want ERROR", entry["level"])
		}
		if entry["message"] != "checksum failed" {
			t.Errorf("message = %v", entry["message"])
		}
		if entry["error"] == nil {
			t.Error("error field missing")
		}
		if entry["key"] != "broken.txt" {
			t.Errorf("key = %v, want broken.txt", entry["key"])
		}
	})

	t.Run("LevelFiltering", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.log")
		logger, err := NewFileLogger(FileLoggerConfig{Path: path, Format: FormatText, Level: WarnLevel})
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}

		logger.Debug(ctx, "debug message", nil)
		logger.Info(ctx, "info message", nil)
		logger.Warn(ctx, "warn message", nil)
		logger.Error(ctx, "error message", nil, nil)
		logger.Close()

		lines := readLogFile(t, path)
		if len(lines) != 2 {
			t.Errorf("log has %d lines, want 2 (warn and error only)", len(lines))
		}
	})

	t.Run("WithFields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.log")
		logger, err := NewFileLogger(FileLoggerConfig{Path: path, Format: FormatJSON, Level: InfoLevel})
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}

		runLogger := logger.WithFields(Fields{"run_id": "abc-123"})
		runLogger.Info(ctx, "message", Fields{"extra": "data"})
		logger.Close()

		lines := readLogFile(t, path)
		if len(lines) != 1 {
			t.Fatalf("log has %d lines, want 1", len(lines))
		}

		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
			t.Fatalf("log line is not valid json: %v", err)
		}
		if entry["run_id"] != "abc-123" {
			t.Errorf("run_id = %v, want abc-123", entry["run_id"])
		}
		if entry["extra"] != "data" {
			t.Errorf("extra = %v, want data", entry["extra"])
		}
	})

	t.Run("CreatesParentDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "test.log")
		logger, err := NewFileLogger(FileLoggerConfig{Path: path, Format: FormatText, Level: InfoLevel})
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}
		logger.Info(ctx, "created", nil)
		logger.Close()

		if _, err := os.Stat(path); err != nil {
			t.Errorf("log file not created: %v", err)
		}
	})
}

// TestNullLogger verifies the no-op logger never panics
func TestNullLogger(t *testing.T) {
	ctx := context.Background()
	logger := NewNullLogger()

	logger.Debug(ctx, "msg", nil)
	logger.Info(ctx, "msg", Fields{"k": "v"})
	logger.Warn(ctx, "msg", nil)
	logger.Error(ctx, "msg", os.ErrNotExist, nil)

	if child := logger.WithFields(Fields{"k": "v"}); child == nil {
		t.Error("WithFields() returned nil")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

// TestParseLevel tests log level parsing
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", InfoLevel},
		{"", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
