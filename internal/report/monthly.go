package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"worklog/internal/model"
)

// MonthTotals sums a month of records into per-task durations and a
// grand total. Days with only break records add nothing.
func MonthTotals(records []model.Record, now model.Instant) model.Summary {
	byDate := make(map[string][]model.Record)
	for _, record := range records {
		key := record.WorkingDate.String()
		byDate[key] = append(byDate[key], record)
	}

	totals := model.Summary{TaskDurations: make(map[string]time.Duration)}
	for _, day := range byDate {
		summary, err := model.Summarize(day, now)
		if err != nil {
			continue
		}
		totals.Total += summary.Total
		for name, d := range summary.TaskDurations {
			totals.TaskDurations[name] += d
		}
	}
	return totals
}

// MonthlyMarkdown builds a markdown report for one month of records:
// a table of daily attendance plus the month's per-task totals.
func MonthlyMarkdown(month string, records []model.Record, now model.Instant) string {
	byDate := make(map[string][]model.Record)
	dates := make([]string, 0)
	for _, record := range records {
		key := record.WorkingDate.String()
		if _, ok := byDate[key]; !ok {
			dates = append(dates, key)
		}
		byDate[key] = append(byDate[key], record)
	}
	sort.Strings(dates)

	var b strings.Builder
	fmt.Fprintf(&b, "# Worklog %s\n\n", month)

	if len(dates) == 0 {
		b.WriteString("No Records\n")
		return b.String()
	}

	b.WriteString("## Days\n\n")
	b.WriteString("| Date | Begin | End | Total |\n")
	b.WriteString("| --- | --- | --- | --- |\n")

	monthTotal := time.Duration(0)
	taskTotals := make(map[string]time.Duration)
	for _, date := range dates {
		summary, err := model.Summarize(byDate[date], now)
		if errors.Is(err, model.ErrNoWorkRecords) {
			// A day of nothing but breaks has no attendance row.
			continue
		}
		if err != nil {
			continue
		}
		end := ""
		if summary.End != nil {
			end = summary.End.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			date, summary.Begin.String(), end, model.FormatHM(summary.Total))
		monthTotal += summary.Total
		for name, d := range summary.TaskDurations {
			taskTotals[name] += d
		}
	}

	b.WriteString("\n## Tasks\n\n")
	b.WriteString("| Task | Duration | Percent |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, share := range TaskShares(model.Summary{Total: monthTotal, TaskDurations: taskTotals}) {
		fmt.Fprintf(&b, "| %s | %s | %.1f%% |\n",
			share.Name, model.FormatHM(share.Duration), share.Percent)
	}

	fmt.Fprintf(&b, "\nTotal: %s\n", model.FormatHM(monthTotal))
	return b.String()
}
