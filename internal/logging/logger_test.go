package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"relname/internal/config"
	"relname/internal/logging"
)

func TestNewFromConfigWritesFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "relname.log")
	cfg.Logging.Level = "debug"

	var stderr bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("debug message")

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var line map[string]any
	if err := json.Unmarshal(content, &line); err != nil {
		t.Fatalf("log file should hold JSON lines, got %q: %v", content, err)
	}
	if line["msg"] != "debug message" {
		t.Fatalf("unexpected file line %v", line)
	}
	if !strings.Contains(stderr.String(), "DEBUG debug message") {
		t.Fatalf("expected console line on the writer, got %q", stderr.String())
	}
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "library")
	logger.Info("scan finished", logging.Int("files", 12), logging.String("root", "/media/tv shows"))

	line := buf.String()
	if !strings.Contains(line, "INFO  library: scan finished") {
		t.Fatalf("missing level, component or message in %q", line)
	}
	if !strings.Contains(line, "files=12") {
		t.Fatalf("missing int field in %q", line)
	}
	if !strings.Contains(line, `root="/media/tv shows"`) {
		t.Fatalf("expected quoted value in %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be a prefix, got %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no source location outside development mode, got %q", line)
	}
}

func TestConsoleLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN  shown") {
		t.Fatalf("missing warn line: %q", out)
	}
}

func TestJSONLoggerShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger = logging.NewComponentLogger(logger, "release")
	logger.Debug("match discarded", logging.Args(logging.DecisionAttrs("match", "discarded", "overlap")...)...)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json line %q: %v", buf.String(), err)
	}
	want := map[string]string{
		"level":           "debug",
		"msg":             "match discarded",
		"component":       "release",
		"decision_type":   "match",
		"decision_result": "discarded",
		"decision_reason": "overlap",
	}
	for key, value := range want {
		if payload[key] != value {
			t.Fatalf("%s = %v, want %q", key, payload[key], value)
		}
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key in %v", payload)
	}
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "test")
	logger.Error("nothing happens")
	if logger.Enabled(t.Context(), 0) {
		t.Fatal("nop logger should not be enabled")
	}
}
