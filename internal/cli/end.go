package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/model"
	"worklog/internal/prompt"
	"worklog/internal/report"
)

var endDate string

var endCmd = &cobra.Command{
	Use:     "end",
	Aliases: []string{"e"},
	Short:   "End the running record and show the day's summary",
	Args:    cobra.NoArgs,
	RunE:    runEnd,
}

func init() {
	endCmd.Flags().StringVarP(&endDate, "date", "d", "", "Working date (YYYY-MM-DD)")
}

func runEnd(cmd *cobra.Command, args []string) error {
	date, err := resolveDate(endDate)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	open, err := store.CurrentOpenRecord(cmd.Context(), date)
	if err != nil {
		return err
	}
	if open == nil {
		return fmt.Errorf("nothing is running on %s", date)
	}

	value, err := prompt.Input("End", now().String())
	if err != nil {
		return err
	}
	end, err := model.ParseWithDate(date, value)
	if err != nil {
		return err
	}

	open.End = &end
	if err := store.SaveRecord(cmd.Context(), *open); err != nil {
		return err
	}

	records, err := store.RecordsByDate(cmd.Context(), date)
	if err != nil {
		return err
	}
	summary, err := model.Summarize(records, now())
	if err != nil {
		if errors.Is(err, model.ErrNoWorkRecords) {
			fmt.Println("No Records")
			return nil
		}
		return err
	}
	fmt.Println(report.SummaryView(summary, now()))
	return nil
}
