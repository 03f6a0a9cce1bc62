package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerRespectsEachLevel(t *testing.T) {
	var quiet, loud bytes.Buffer
	quietLevel := new(slog.LevelVar)
	quietLevel.Set(slog.LevelWarn)
	loudLevel := new(slog.LevelVar)
	loudLevel.Set(slog.LevelDebug)

	logger := slog.New(newMultiHandler(
		nil,
		newConsoleHandler(&quiet, quietLevel, false),
		newConsoleHandler(&loud, loudLevel, false),
	)).With(String(FieldComponent, "test"))
	logger.Info("only loud")
	logger.Warn("both")

	if strings.Contains(quiet.String(), "only loud") || !strings.Contains(quiet.String(), "both") {
		t.Fatalf("quiet handler got %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "test: only loud") || !strings.Contains(loud.String(), "test: both") {
		t.Fatalf("loud handler got %q", loud.String())
	}
}

func TestMultiHandlerCollapses(t *testing.T) {
	if _, ok := newMultiHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newMultiHandler(nil, inner); h != inner {
		t.Fatal("expected a single handler to be returned unwrapped")
	}
}
