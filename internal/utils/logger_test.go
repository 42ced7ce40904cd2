// internal/utils/logger_test.go
package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := &SimpleLogger{level: WarnLevel, out: &buf}

	logger.Debugf("debug %d", 1)
	logger.Infof("info %d", 2)
	logger.Warnf("warn %d", 3)
	logger.Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("below-threshold lines emitted:\n%s", out)
	}
	if !strings.Contains(out, "warn 3") || !strings.Contains(out, "error 4") {
		t.Errorf("expected warn and error lines:\n%s", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	base := &SimpleLogger{level: InfoLevel, out: &buf}

	base.WithField("source", "moran").WithField("page", 2).Infof("scraped")

	out := buf.String()
	if !strings.Contains(out, "page=2") || !strings.Contains(out, "source=moran") {
		t.Errorf("fields missing from output:\n%s", out)
	}
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("level tag missing:\n%s", out)
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
