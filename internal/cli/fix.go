package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/model"
	"worklog/internal/prompt"
)

var (
	fixDate   string
	fixDelete bool
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Correct or delete a recorded interval",
	Args:  cobra.NoArgs,
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().StringVarP(&fixDate, "date", "d", "", "Working date (YYYY-MM-DD)")
	fixCmd.Flags().BoolVar(&fixDelete, "delete", false, "Delete the selected record")
}

func runFix(cmd *cobra.Command, args []string) error {
	date, err := resolveDate(fixDate)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.RecordsByDate(cmd.Context(), date)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No Records")
		return nil
	}

	record, err := selectRecord("Fix which record?", records)
	if err != nil {
		return err
	}

	if fixDelete {
		ok, err := prompt.Confirm(fmt.Sprintf("Delete %s?", recordLabel(record)), false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
		if err := store.DeleteRecord(cmd.Context(), *record.ID); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	}

	beginValue, err := prompt.Input("Begin", record.Begin.String())
	if err != nil {
		return err
	}
	begin, err := model.ParseWithDate(date, beginValue)
	if err != nil {
		return err
	}

	endDefault := ""
	if record.End != nil {
		endDefault = record.End.String()
	}
	endValue, err := prompt.Input("End (empty keeps the record open)", endDefault)
	if err != nil {
		return err
	}

	record.Begin = begin
	record.End = nil
	if endValue != "" {
		end, err := model.ParseWithDate(date, endValue)
		if err != nil {
			return err
		}
		record.End = &end
	}

	if err := store.SaveRecord(cmd.Context(), record); err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", recordLabel(record))
	return nil
}
