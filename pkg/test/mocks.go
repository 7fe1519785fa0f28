package test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"runsvc/pkg/system"
)

// MockScriptRunner is a shared mock implementation of
// system.ScriptRunner for testing. It records invocations and returns
// a configured result or error.
type MockScriptRunner struct {
	mu      sync.Mutex
	Calls   []string   // script paths, in invocation order
	EnvSeen [][]string // extraEnv passed on each call
	Result  *system.Result
	Err     error
}

// NewMockScriptRunner creates a runner that reports exit code 0 with
// no output until reconfigured.
func NewMockScriptRunner() *MockScriptRunner {
	return &MockScriptRunner{Result: &system.Result{}}
}

// Run records the call and returns the configured outcome.
func (r *MockScriptRunner) Run(_ context.Context, scriptPath string, extraEnv []string) (*system.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, scriptPath)
	r.EnvSeen = append(r.EnvSeen, extraEnv)
	if r.Err != nil {
		return nil, r.Err
	}
	res := *r.Result
	return &res, nil
}

// CallCount returns how many times Run has been invoked.
func (r *MockScriptRunner) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Calls)
}

// MockLogger is a shared mock implementation of log.Logger that
// captures messages for verification.
type MockLogger struct {
	Messages []string
	Level    slog.Level
}

func NewMockLogger(level slog.Level) *MockLogger {
	return &MockLogger{Level: level}
}

func (l *MockLogger) Debug(msg string, args ...any) {
	if l.Level <= slog.LevelDebug {
		l.capture("DEBUG", msg, args...)
	}
}

func (l *MockLogger) Info(msg string, args ...any) {
	if l.Level <= slog.LevelInfo {
		l.capture("INFO", msg, args...)
	}
}

func (l *MockLogger) Warn(msg string, args ...any) {
	if l.Level <= slog.LevelWarn {
		l.capture("WARN", msg, args...)
	}
}

func (l *MockLogger) Error(msg string, args ...any) {
	if l.Level <= slog.LevelError {
		l.capture("ERROR", msg, args...)
	}
}

func (l *MockLogger) capture(level, msg string, args ...any) {
	buf := &bytes.Buffer{}
	buf.WriteString(level)
	buf.WriteString(": ")
	buf.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(buf, " %v=%v", args[i], args[i+1])
	}
	l.Messages = append(l.Messages, buf.String())
}

// HasMessage checks if any captured message contains the substring.
func (l *MockLogger) HasMessage(substring string) bool {
	for _, msg := range l.Messages {
		if bytes.Contains([]byte(msg), []byte(substring)) {
			return true
		}
	}
	return false
}

// Reset clears all captured messages.
func (l *MockLogger) Reset() {
	l.Messages = nil
}
