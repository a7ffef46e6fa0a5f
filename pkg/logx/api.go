package logx

import "fmt"

var defaultLogger = NewLogger()

// SetDefaultLogger replaces the global logger.
func SetDefaultLogger(l *Logger) { defaultLogger = l }

// GetDefaultLogger returns the global logger.
func GetDefaultLogger() *Logger { return defaultLogger }

// SetLevel sets the level of the global logger.
func SetLevel(level Level) { defaultLogger.SetLevel(level) }

func Debug(msg string) { defaultLogger.log(LevelDebug, msg, nil) }
func Info(msg string)  { defaultLogger.log(LevelInfo, msg, nil) }
func Warn(msg string)  { defaultLogger.log(LevelWarn, msg, nil) }
func Error(msg string) { defaultLogger.log(LevelError, msg, nil) }

func Fatal(msg string) {
	defaultLogger.log(LevelFatal, msg, nil)
	defaultLogger.exit(1)
}

func Debugf(format string, args ...any) {
	defaultLogger.log(LevelDebug, fmt.Sprintf(format, args...), nil)
}

func Infof(format string, args ...any) {
	defaultLogger.log(LevelInfo, fmt.Sprintf(format, args...), nil)
}

func Warnf(format string, args ...any) {
	defaultLogger.log(LevelWarn, fmt.Sprintf(format, args...), nil)
}

func Errorf(format string, args ...any) {
	defaultLogger.log(LevelError, fmt.Sprintf(format, args...), nil)
}

func Fatalf(format string, args ...any) {
	defaultLogger.log(LevelFatal, fmt.Sprintf(format, args...), nil)
	defaultLogger.exit(1)
}

// WithFields creates an entry with fields on the global logger.
func WithFields(fields Fields) *Entry { return defaultLogger.WithFields(fields) }

// WithField creates an entry with a single field on the global logger.
func WithField(key string, value any) *Entry { return defaultLogger.WithField(key, value) }

// WithError creates an entry with an error field on the global logger.
func WithError(err error) *Entry { return defaultLogger.WithError(err) }
