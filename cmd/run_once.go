package cmd

import (
	"runsvc/pkg/config"
	"runsvc/pkg/runlog"
	"runsvc/pkg/service"

	"github.com/spf13/cobra"
)

// runOnceCmd executes a single cycle and exits without entering the
// loop. The outcome is recorded in the run log exactly as a scheduled
// cycle would be.
var runOnceCmd = &cobra.Command{
	Use:   "run-once",
	Short: "Execute one cycle immediately and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath(), logger)
		journal := runlog.NewJournal(logPath())
		svc := service.New(scriptPath(), journal, cfg.Interval, config.DefaultMaxLogLines, scriptRunner, logger)

		svc.ExecuteOnce(cmd.Context())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runOnceCmd)
}
