package logx

import "fmt"

// Entry is a log statement under construction with accumulated fields.
type Entry struct {
	logger *Logger
	fields Fields
}

// WithField adds a field and returns the entry for chaining.
func (e *Entry) WithField(key string, value any) *Entry {
	e.fields[key] = value
	return e
}

// WithFields adds multiple fields and returns the entry for chaining.
func (e *Entry) WithFields(fields Fields) *Entry {
	for k, v := range fields {
		e.fields[k] = v
	}
	return e
}

// WithError adds an error field.
func (e *Entry) WithError(err error) *Entry {
	return e.WithField("error", err)
}

func (e *Entry) Debug(msg string) { e.logger.log(LevelDebug, msg, e.fields) }
func (e *Entry) Info(msg string)  { e.logger.log(LevelInfo, msg, e.fields) }
func (e *Entry) Warn(msg string)  { e.logger.log(LevelWarn, msg, e.fields) }
func (e *Entry) Error(msg string) { e.logger.log(LevelError, msg, e.fields) }

func (e *Entry) Debugf(format string, args ...any) {
	e.logger.log(LevelDebug, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Infof(format string, args ...any) {
	e.logger.log(LevelInfo, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Warnf(format string, args ...any) {
	e.logger.log(LevelWarn, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Errorf(format string, args ...any) {
	e.logger.log(LevelError, fmt.Sprintf(format, args...), e.fields)
}
