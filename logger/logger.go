package logger

// Logger is used by the complex functions to report calls and failures
type Logger interface {
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Nop returns l, or a Logger that discards everything when l is nil
func Nop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}

	return l
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
