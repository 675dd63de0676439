package report

import (
	"worklog/internal/model"
)

// RecordRows flattens records into table rows. Open records render an
// empty end column and a live duration against now.
func RecordRows(records []model.Record, now model.Instant) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		end := ""
		if record.End != nil {
			end = record.End.String()
		}
		rows = append(rows, []string{
			record.WorkingDate.String(),
			record.Begin.String(),
			end,
			model.FormatHM(record.Duration(now)),
			record.Task.FormatName("/"),
		})
	}
	return rows
}

// RecordTable renders records as a bordered table ordered as stored.
func RecordTable(records []model.Record, now model.Instant) string {
	if len(records) == 0 {
		return emptyStyle.Render("No Records")
	}
	return renderTable(
		[]string{"Date", "Begin", "End", "Duration", "Task"},
		RecordRows(records, now),
	)
}
