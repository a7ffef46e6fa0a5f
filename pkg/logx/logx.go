package logx

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level is a log severity level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Fields is structured context attached to a log line.
type Fields map[string]any

// Logger writes leveled, structured log lines.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	exitFn func(int)
}

// NewLogger creates a logger writing to stderr at info level.
func NewLogger() *Logger {
	return &Logger{out: os.Stderr, level: LevelInfo, exitFn: os.Exit}
}

// SetLevel sets the minimum level that will be written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput redirects the logger output.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

func (l *Logger) log(level Level, msg string, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(msg)

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
	}
	b.WriteByte('\n')

	io.WriteString(l.out, b.String())
}

func (l *Logger) exit(code int) { l.exitFn(code) }

// WithFields returns an Entry carrying the given fields.
func (l *Logger) WithFields(fields Fields) *Entry {
	e := &Entry{logger: l, fields: make(Fields, len(fields))}
	for k, v := range fields {
		e.fields[k] = v
	}
	return e
}

// WithField returns an Entry carrying a single field.
func (l *Logger) WithField(key string, value any) *Entry {
	return l.WithFields(Fields{key: value})
}

// WithError returns an Entry carrying an error field.
func (l *Logger) WithError(err error) *Entry {
	return l.WithField("error", err)
}
