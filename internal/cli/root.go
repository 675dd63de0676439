// Package cli wires the worklog commands together.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"worklog/internal/prompt"
)

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "worklog is a personal work-time logger",
	Long: `worklog records when you start and stop working on tasks and
summarizes the day. A working day runs from 05:00 to 04:59 the next
morning, so late-night work still lands on the right date.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	err := rootCmd.Execute()
	if err == nil || errors.Is(err, prompt.ErrAborted) {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(logCmd)
}
