package system

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
)

// Result holds the captured outcome of one script execution.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ScriptRunner defines an interface for executing the managed script.
// This allows for mocking in tests.
type ScriptRunner interface {
	// Run executes scriptPath with no arguments and extraEnv appended to
	// the inherited environment. A non-nil error means the script could
	// not be started at all; a nonzero exit is reported in Result, not
	// as an error.
	Run(ctx context.Context, scriptPath string, extraEnv []string) (*Result, error)
}

// LiveScriptRunner is an implementation of ScriptRunner that runs the
// script as a real child process. No timeout is applied beyond the
// caller's context.
type LiveScriptRunner struct{}

func (r *LiveScriptRunner) Run(ctx context.Context, scriptPath string, extraEnv []string) (*Result, error) {
	cmd := exec.CommandContext(ctx, scriptPath)
	cmd.Dir = filepath.Dir(scriptPath)
	cmd.Env = append(os.Environ(), extraEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The script never started (missing, not executable, ...).
			return nil, err
		}
		result.ExitCode = exitErr.ExitCode()
	}
	return result, nil
}
