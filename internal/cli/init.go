package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/prompt"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or reset the worklog database",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ok, err := prompt.Confirm("Reset the database? All existing data will be removed.", false)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	if err := store.Reset(); err != nil {
		return err
	}
	fmt.Println("Database initialized.")
	return nil
}
