package cmd

import (
	"fmt"
	"strconv"

	"runsvc/pkg/config"

	"github.com/spf13/cobra"
)

// setIntervalCmd persists a new execution interval. It never touches a
// running loop; the new value takes effect on next start.
var setIntervalCmd = &cobra.Command{
	Use:   "set-interval <seconds>",
	Short: "Persist a new execution interval in seconds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid interval %q: must be an integer number of seconds", args[0])
		}
		if seconds <= 0 {
			return fmt.Errorf("invalid interval %d: must be positive", seconds)
		}

		cfg := config.Load(configPath(), logger)
		cfg.Interval = seconds
		// A save failure is reported but not fatal: argument errors are
		// the only nonzero exits for this command.
		if err := config.Save(configPath(), cfg); err != nil {
			logger.Warn("saving config failed, new interval not persisted", "error", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Interval set to %d seconds\n", seconds)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setIntervalCmd)
}
