// Package service implements the scheduler-runner loop: execute the
// managed script, record the outcome, wait, repeat.
package service

import (
	"context"
	"path/filepath"
	"time"

	"runsvc/pkg/log"
	"runsvc/pkg/runlog"
	"runsvc/pkg/system"
)

// Service owns the state of one scheduler-runner: the script to
// execute, the run log, and the cycle interval. It is driven by a
// single goroutine; cancellation of the context passed to Run is the
// only way to stop it.
type Service struct {
	scriptPath  string
	journal     *runlog.Journal
	interval    int // seconds between cycles
	maxLogLines int
	runner      system.ScriptRunner
	logger      log.Logger
}

func New(scriptPath string, journal *runlog.Journal, interval, maxLogLines int, runner system.ScriptRunner, logger log.Logger) *Service {
	return &Service{
		scriptPath:  scriptPath,
		journal:     journal,
		interval:    interval,
		maxLogLines: maxLogLines,
		runner:      runner,
		logger:      logger,
	}
}

// Run executes cycles until ctx is canceled. The inter-cycle wait
// polls for cancellation once per second, so shutdown is honored
// within one second rather than after a full interval.
func (s *Service) Run(ctx context.Context) {
	s.logger.Info("service started", "interval_seconds", s.interval, "script", s.scriptPath)
	for {
		s.ExecuteOnce(ctx)
		if !s.wait(ctx) {
			s.logger.Info("service stopping")
			return
		}
	}
}

// ExecuteOnce runs one cycle: invoke the script, append the outcome to
// the run log, trim the log. Every failure is logged and swallowed;
// nothing here stops the loop.
func (s *Service) ExecuteOnce(ctx context.Context) {
	started := time.Now()

	extraEnv, err := system.LoadScriptEnv(filepath.Dir(s.scriptPath))
	if err != nil {
		s.logger.Warn("loading script env failed, continuing without it", "error", err)
		extraEnv = nil
	}

	var block string
	result, err := s.runner.Run(ctx, s.scriptPath, extraEnv)
	if err != nil {
		block = runlog.ErrorEntry(started, err)
		s.logger.Error("script invocation failed", "script", s.scriptPath, "error", err)
	} else {
		block = runlog.Entry{
			Timestamp: started,
			ExitCode:  result.ExitCode,
			Stdout:    result.Stdout,
			Stderr:    result.Stderr,
		}.String()
		s.logger.Info("script executed", "exit_code", result.ExitCode)
	}

	if err := s.journal.Append(block); err != nil {
		s.logger.Error("appending to run log failed", "error", err)
		return
	}
	if err := s.journal.Trim(s.maxLogLines); err != nil {
		s.logger.Error("trimming run log failed", "error", err)
	}
}

// wait blocks for up to the configured interval, checking for
// cancellation every second. It reports whether the loop should
// continue.
func (s *Service) wait(ctx context.Context) bool {
	for elapsed := 0; elapsed < s.interval; elapsed++ {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(time.Second):
		}
	}
	// A cancellation that raced the last tick still wins.
	select {
	case <-ctx.Done():
		return false
	default:
		return true
	}
}
