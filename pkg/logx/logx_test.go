package logx

import (
	"bytes"
	"strings"
	"testing"
)

func newBufferedLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger()
	l.SetOutput(&buf)
	l.SetLevel(level)
	return l, &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferedLogger(LevelWarn)

	l.WithFields(Fields{}).Info("hidden")
	l.WithFields(Fields{}).Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatal("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Fatal("warn message missing")
	}
}

func TestLogger_FieldsSortedAndFormatted(t *testing.T) {
	l, buf := newBufferedLogger(LevelDebug)

	l.WithFields(Fields{"zebra": 1, "alpha": "x"}).Info("msg")

	out := buf.String()
	if !strings.Contains(out, "alpha=x zebra=1") {
		t.Fatalf("expected sorted key=value fields, got %q", out)
	}
	if !strings.Contains(out, "[INFO]") {
		t.Fatalf("expected level tag, got %q", out)
	}
}

func TestLogger_WithErrorAddsField(t *testing.T) {
	l, buf := newBufferedLogger(LevelDebug)

	l.WithError(errFake("boom")).Error("operation failed")

	if !strings.Contains(buf.String(), "error=boom") {
		t.Fatalf("expected error field, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"error":   LevelError,
		"unknown": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }
