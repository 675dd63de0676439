package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/model"
	"worklog/internal/report"
)

var (
	logAll      bool
	logDate     string
	logMonth    string
	logMarkdown bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show records and summaries",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().BoolVar(&logAll, "all", false, "Show every record")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Working date (YYYY-MM-DD)")
	logCmd.Flags().StringVarP(&logMonth, "month", "m", "", "Month (YYYY-MM)")
	logCmd.Flags().BoolVar(&logMarkdown, "markdown", false, "Render the month as a markdown report")
}

func runLog(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if logAll {
		records, err := store.Records(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(report.RecordTable(records, now()))
		return nil
	}

	if logMonth != "" {
		first, last, err := model.ParseYearMonth(logMonth)
		if err != nil {
			return err
		}
		records, err := store.RecordsInPeriod(cmd.Context(), first, last)
		if err != nil {
			return err
		}
		if logMarkdown {
			md := report.MonthlyMarkdown(first.String()[:7], records, now())
			fmt.Println(report.RenderMarkdown(md))
			return nil
		}
		fmt.Println(report.RecordTable(records, now()))
		if totals := report.MonthTotals(records, now()); len(totals.TaskDurations) > 0 {
			fmt.Println(report.TaskShareTable(totals))
		}
		return nil
	}

	date, err := resolveDate(logDate)
	if err != nil {
		return err
	}
	records, err := store.RecordsByDate(cmd.Context(), date)
	if err != nil {
		return err
	}
	fmt.Println(report.RecordTable(records, now()))

	summary, err := model.Summarize(records, now())
	if err != nil {
		if errors.Is(err, model.ErrNoWorkRecords) {
			return nil
		}
		return err
	}
	fmt.Println(report.SummaryView(summary, now()))
	return nil
}
