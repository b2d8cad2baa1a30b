package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// StdOutLogger writes leveled key/value logs using charmbracelet/log
type StdOutLogger struct {
	logger *log.Logger
}

var _ Logger = (*StdOutLogger)(nil)

// NewStdOutLogger creates a logger writing to stdout at the given level
func NewStdOutLogger(level log.Level) *StdOutLogger {
	return NewWriterLogger(os.Stdout, level)
}

// NewWriterLogger creates a logger writing to w at the given level, every
// line is prefixed with hclcomplex
func NewWriterLogger(w io.Writer, level log.Level) *StdOutLogger {
	l := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "hclcomplex",
	})

	return &StdOutLogger{logger: l}
}

func (l *StdOutLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, args...)
}

func (l *StdOutLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(msg, args...)
}

func (l *StdOutLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(msg, args...)
}

func (l *StdOutLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(msg, args...)
}
