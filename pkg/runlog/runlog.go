// Package runlog formats and persists the plain-text run log: one
// timestamped block per cycle, bounded by a raw line count.
package runlog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"

	"runsvc/pkg/system"
)

// Separator closes every entry block.
const Separator = "--------------------------------------------------"

const timeLayout = "2006-01-02 15:04:05"

// Entry is the outcome of one successful invocation (the script ran,
// whatever its exit code).
type Entry struct {
	Timestamp time.Time
	ExitCode  int
	Stdout    string
	Stderr    string
}

// String renders the entry block. Captured output is trimmed and only
// included when nonempty.
func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] Exit code: %d\n", e.Timestamp.Format(timeLayout), e.ExitCode)
	if out := strings.TrimSpace(e.Stdout); out != "" {
		fmt.Fprintf(&b, "STDOUT: %s\n", out)
	}
	if errOut := strings.TrimSpace(e.Stderr); errOut != "" {
		fmt.Fprintf(&b, "STDERR: %s\n", errOut)
	}
	b.WriteString(Separator + "\n")
	return b.String()
}

// ErrorEntry renders the block written when the script could not be
// invoked at all.
func ErrorEntry(ts time.Time, err error) string {
	return fmt.Sprintf("[%s] ERROR: %v\n%s\n", ts.Format(timeLayout), err, Separator)
}

// Journal is the append-only run log file.
type Journal struct {
	path string
}

func NewJournal(path string) *Journal {
	return &Journal{path: path}
}

func (j *Journal) Path() string {
	return j.path
}

// Append writes a rendered block to the end of the run log, creating
// the file if needed.
func (j *Journal) Append(block string) error {
	f, err := system.AppFs.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening run log %s: %w", j.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("appending to run log %s: %w", j.path, err)
	}
	return nil
}

// Trim keeps only the trailing maxLines lines. The cut is by raw line
// count, not entry boundary, so an old entry may be split.
func (j *Journal) Trim(maxLines int) error {
	lines, err := j.readLines()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(lines) <= maxLines {
		return nil
	}
	trimmed := strings.Join(lines[len(lines)-maxLines:], "")
	if err := afero.WriteFile(system.AppFs, j.path, []byte(trimmed), 0644); err != nil {
		return fmt.Errorf("rewriting run log %s: %w", j.path, err)
	}
	return nil
}

// Tail returns up to n trailing lines without their newlines.
func (j *Journal) Tail(n int) ([]string, error) {
	lines, err := j.readLines()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(line, "\n")
	}
	return out, nil
}

// Clear truncates the run log.
func (j *Journal) Clear() error {
	if err := afero.WriteFile(system.AppFs, j.path, nil, 0644); err != nil {
		return fmt.Errorf("clearing run log %s: %w", j.path, err)
	}
	return nil
}

// readLines splits the file keeping newlines attached, so joining a
// slice of lines reproduces the original bytes.
func (j *Journal) readLines() ([]string, error) {
	content, err := afero.ReadFile(system.AppFs, j.path)
	if err != nil {
		return nil, err
	}
	lines := strings.SplitAfter(string(content), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
