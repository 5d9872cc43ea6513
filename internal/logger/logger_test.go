package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestLogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		logDebug  bool
		wantDebug bool
	}{
		{"debug level emits debug", "debug", true, true},
		{"info level suppresses debug", "info", true, false},
		{"unknown level defaults to info", "bogus", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)
			if tt.logDebug {
				log.Debug("debug message")
			}
			got := buf.Len() > 0
			if got != tt.wantDebug {
				t.Errorf("debug output present = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestJSONKeysRenamed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)
	log.Warn("careful")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}

	if entry["message"] != "careful" {
		t.Errorf("message = %v, want %q", entry["message"], "careful")
	}
	if entry["level"] != "warning" {
		t.Errorf("level = %v, want %q", entry["level"], "warning")
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("missing timestamp key")
	}
}

func TestWithFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)
	log.WithModule("rank").WithRequestID("abc-123").WithField("count", 3).Info("ranked")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}

	if entry["module"] != "rank" {
		t.Errorf("module = %v, want %q", entry["module"], "rank")
	}
	if entry["request_id"] != "abc-123" {
		t.Errorf("request_id = %v, want %q", entry["request_id"], "abc-123")
	}
	if entry["count"] != float64(3) {
		t.Errorf("count = %v, want 3", entry["count"])
	}
}
