package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/model"
	"worklog/internal/prompt"
	"worklog/internal/report"
)

var startDate string

var startCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"s"},
	Short:   "Start working on a task",
	Args:    cobra.NoArgs,
	RunE:    runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startDate, "date", "d", "", "Working date (YYYY-MM-DD)")
}

func runStart(cmd *cobra.Command, args []string) error {
	date, err := resolveDate(startDate)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tasks, err := store.Tasks(cmd.Context())
	if err != nil {
		return err
	}
	candidates := activeTasks(tasks)
	if len(candidates) == 0 {
		return fmt.Errorf("no tasks registered, run `worklog task register` first")
	}

	task, err := selectTask("Start which task?", candidates)
	if err != nil {
		return err
	}

	value, err := prompt.Input("Begin", now().String())
	if err != nil {
		return err
	}
	begin, err := model.ParseWithDate(date, value)
	if err != nil {
		return err
	}

	// A still-running record ends where the new one begins.
	open, err := store.CurrentOpenRecord(cmd.Context(), date)
	if err != nil {
		return err
	}
	if open != nil {
		open.End = &begin
		if err := store.SaveRecord(cmd.Context(), *open); err != nil {
			return err
		}
	}

	record := model.Record{Task: task, WorkingDate: date, Begin: begin}
	if err := store.SaveRecord(cmd.Context(), record); err != nil {
		return err
	}
	fmt.Printf("Started %s at %s\n", task.FormatName("/"), begin.String())

	records, err := store.RecordsByDate(cmd.Context(), date)
	if err != nil {
		return err
	}
	fmt.Println(report.RecordTable(records, now()))
	return nil
}
