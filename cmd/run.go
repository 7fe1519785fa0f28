package cmd

import (
	"os/signal"
	"syscall"

	"runsvc/pkg/config"
	"runsvc/pkg/runlog"
	"runsvc/pkg/service"

	"github.com/spf13/cobra"
)

// runCmd represents the run command. It is the same action as invoking
// runsvc with no arguments.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduler loop until interrupted",
	Long: `Runs run.sh on the configured interval, appending each outcome to
run.log. SIGINT or SIGTERM stops the loop; a pending shutdown is
honored within one second of the signal.`,
	Args: cobra.NoArgs,
	RunE: runLoop,
}

func runLoop(cmd *cobra.Command, args []string) error {
	cfg := config.Load(configPath(), logger)
	journal := runlog.NewJournal(logPath())
	svc := service.New(scriptPath(), journal, cfg.Interval, config.DefaultMaxLogLines, scriptRunner, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc.Run(ctx)
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
