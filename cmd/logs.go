package cmd

import (
	"fmt"

	"runsvc/pkg/runlog"

	"github.com/spf13/cobra"
)

var logsLines int

// logsCmd prints the tail of the run log.
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the trailing lines of the run log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if logsLines <= 0 {
			return fmt.Errorf("invalid --lines %d: must be positive", logsLines)
		}

		journal := runlog.NewJournal(logPath())
		lines, err := journal.Tail(logsLines)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

// clearLogsCmd truncates the run log.
var clearLogsCmd = &cobra.Command{
	Use:   "clear-logs",
	Short: "Truncate the run log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		journal := runlog.NewJournal(logPath())
		if err := journal.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Run log cleared")
		return nil
	},
}

func init() {
	logsCmd.Flags().IntVar(&logsLines, "lines", 20, "number of trailing lines to print")
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(clearLogsCmd)
}
