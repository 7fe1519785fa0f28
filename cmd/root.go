package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"runsvc/pkg/log"
	"runsvc/pkg/system"

	"github.com/spf13/cobra"
)

const (
	scriptFileName = "run.sh"
	logFileName    = "run.log"
	configFileName = "service_config.json"
)

var (
	baseDir      string
	logLevel     string
	logger       log.Logger
	scriptRunner system.ScriptRunner = &system.LiveScriptRunner{}
	rootCmd                          = &cobra.Command{
		Use:   "runsvc",
		Short: "runsvc periodically executes a script and records the outcome",
		Long: `A small supervisor that runs a fixed script (run.sh, next to the
binary) on a configured interval, appends each outcome to a bounded
run log, and persists the interval in service_config.json.

Invoked with no arguments it runs the loop, same as the run command.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			logger = log.NewSlogLogger(level, cmd.OutOrStdout())
			if baseDir == "" {
				baseDir = defaultBaseDir()
			}
			return nil
		},
		RunE: runLoop,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", levelStr)
	}
}

// defaultBaseDir is the directory holding the binary, the script, the
// run log, and the config. Falls back to the working directory when
// the executable path cannot be determined.
func defaultBaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Dir(exe)
}

func scriptPath() string {
	return filepath.Join(baseDir, scriptFileName)
}

func logPath() string {
	return filepath.Join(baseDir, logFileName)
}

func configPath() string {
	return filepath.Join(baseDir, configFileName)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "base directory for run.sh, run.log and service_config.json (default is the executable's directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
