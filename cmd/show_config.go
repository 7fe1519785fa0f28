package cmd

import (
	"fmt"

	"runsvc/pkg/config"

	"github.com/spf13/cobra"
)

// showConfigCmd prints the resolved configuration and paths.
var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Print the resolved configuration and file paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath(), logger)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "interval: %d seconds\n", cfg.Interval)
		fmt.Fprintf(out, "max log lines: %d\n", config.DefaultMaxLogLines)
		fmt.Fprintf(out, "script: %s\n", scriptPath())
		fmt.Fprintf(out, "run log: %s\n", logPath())
		fmt.Fprintf(out, "config: %s\n", configPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}
