package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// Entry is a single buffered log line
type Entry struct {
	Level   string
	Message string
	Args    []interface{}
}

// String formats the entry with its args as key=value pairs
func (e Entry) String() string {
	parts := []string{fmt.Sprintf("[%s] %s", e.Level, e.Message)}

	for i := 0; i < len(e.Args); i += 2 {
		if i+1 < len(e.Args) {
			parts = append(parts, fmt.Sprintf("%v=%v", e.Args[i], e.Args[i+1]))
		} else {
			parts = append(parts, fmt.Sprintf("%v", e.Args[i]))
		}
	}

	return strings.Join(parts, " ")
}

// TestLogger buffers log entries and only writes them to the test output
// when the test fails
type TestLogger struct {
	t       testing.TB
	entries []Entry
	mu      sync.Mutex
}

var _ Logger = (*TestLogger)(nil)

// NewTestLogger creates a TestLogger bound to t
func NewTestLogger(t testing.TB) *TestLogger {
	l := &TestLogger{t: t}

	t.Cleanup(l.flushIfFailed)

	return l
}

func (l *TestLogger) Info(msg string, args ...interface{}) {
	l.add("INFO", msg, args)
}

func (l *TestLogger) Debug(msg string, args ...interface{}) {
	l.add("DEBUG", msg, args)
}

func (l *TestLogger) Warn(msg string, args ...interface{}) {
	l.add("WARN", msg, args)
}

func (l *TestLogger) Error(msg string, args ...interface{}) {
	l.add("ERROR", msg, args)
}

// Entries returns a copy of the buffered entries
func (l *TestLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)

	return out
}

func (l *TestLogger) add(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{Level: level, Message: msg, Args: args})
}

func (l *TestLogger) flushIfFailed() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.t.Failed() {
		return
	}

	l.t.Log("=== Buffered Logs (test failed) ===")
	for _, e := range l.entries {
		l.t.Log(e.String())
	}
	l.t.Log("=== End Buffered Logs ===")
}
