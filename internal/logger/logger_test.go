package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatByEnv(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("prod", &buf).Info("started", "port", "3001")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"service":"expense-tracker"`) {
		t.Fatalf("prod should log JSON, got %q", buf.String())
	}

	buf.Reset()
	l := NewWithWriter("prod", &buf)
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("prod should drop debug, got %q", buf.String())
	}

	buf.Reset()
	NewWithWriter("dev", &buf).Debug("shown")
	if !strings.Contains(buf.String(), "msg=shown") || !strings.Contains(buf.String(), "service=expense-tracker") {
		t.Fatalf("dev should log text at debug, got %q", buf.String())
	}
}
