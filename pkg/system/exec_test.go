package system

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script into dir and returns
// its path. Execution tests need a real filesystem and /bin/sh.
func writeScript(t *testing.T, dir, body string) string {
	if runtime.GOOS == "windows" {
		t.Skip("script execution tests require a POSIX shell")
	}
	path := filepath.Join(dir, "run.sh")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755)
	require.NoError(t, err)
	return path
}

func TestLiveScriptRunner(t *testing.T) {
	runner := &LiveScriptRunner{}

	t.Run("captures stdout and exit code zero", func(t *testing.T) {
		script := writeScript(t, t.TempDir(), "echo hello\n")

		result, err := runner.Run(context.Background(), script, nil)
		require.NoError(t, err)

		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "hello\n", result.Stdout)
		assert.Empty(t, result.Stderr)
	})

	t.Run("captures stderr and nonzero exit code", func(t *testing.T) {
		script := writeScript(t, t.TempDir(), "echo broken >&2\nexit 3\n")

		result, err := runner.Run(context.Background(), script, nil)
		require.NoError(t, err)

		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "broken\n", result.Stderr)
		assert.Empty(t, result.Stdout)
	})

	t.Run("runs with the script's directory as working directory", func(t *testing.T) {
		dir := t.TempDir()
		script := writeScript(t, dir, "pwd\n")

		result, err := runner.Run(context.Background(), script, nil)
		require.NoError(t, err)

		// Resolve symlinks: on some systems TempDir returns a
		// symlinked path while pwd prints the resolved one.
		resolved, rerr := filepath.EvalSymlinks(dir)
		require.NoError(t, rerr)
		assert.Equal(t, resolved+"\n", result.Stdout)
	})

	t.Run("passes extra environment to the script", func(t *testing.T) {
		script := writeScript(t, t.TempDir(), "echo \"$RUNSVC_TEST_TOKEN\"\n")

		result, err := runner.Run(context.Background(), script, []string{"RUNSVC_TEST_TOKEN=sesame"})
		require.NoError(t, err)

		assert.Equal(t, "sesame\n", result.Stdout)
	})

	t.Run("missing script returns an error", func(t *testing.T) {
		result, err := runner.Run(context.Background(), filepath.Join(t.TempDir(), "run.sh"), nil)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
