package shared

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestParseLogLevel(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  log.Level
	}{
		{name: "debug", input: "debug", want: log.DebugLevel},
		{name: "mixed case with spaces", input: "  WARN ", want: log.WarnLevel},
		{name: "error", input: "error", want: log.ErrorLevel},
		{name: "unknown falls back to info", input: "chatty", want: log.InfoLevel},
		{name: "empty falls back to info", input: "", want: log.InfoLevel},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	t.Run("child logger carries fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := WithLogger(NewLogger(&buf), "component", "engine")
		logger.Info("dispatched")

		out := buf.String()
		if !strings.Contains(out, "dispatched") {
			t.Errorf("expected message in output, got %q", out)
		}
		if !strings.Contains(out, "component=engine") {
			t.Errorf("expected component field in output, got %q", out)
		}
	})

	t.Run("level filters output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.WarnLevel)
		logger.Info("hidden")

		if buf.Len() != 0 {
			t.Errorf("expected info to be filtered, got %q", buf.String())
		}
	})
}

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	if first == second {
		t.Error("expected unique ids")
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("expected a valid uuid, got %q: %v", first, err)
	}
}
