package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"worklog/internal/model"
)

// TaskShare is one task's slice of the day's working time.
type TaskShare struct {
	Name     string
	Duration time.Duration
	Percent  float64
}

// TaskShares orders the summary's per-task durations longest first.
// Ties fall back to name order so the output is stable.
func TaskShares(s model.Summary) []TaskShare {
	shares := make([]TaskShare, 0, len(s.TaskDurations))
	for name, d := range s.TaskDurations {
		percent := 0.0
		if s.Total > 0 {
			percent = float64(d) / float64(s.Total) * 100
		}
		shares = append(shares, TaskShare{Name: name, Duration: d, Percent: percent})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Duration != shares[j].Duration {
			return shares[i].Duration > shares[j].Duration
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

// TaskShareTable renders the per-task durations longest first.
func TaskShareTable(s model.Summary) string {
	shares := TaskShares(s)
	rows := make([][]string, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, []string{
			share.Name,
			model.FormatHM(share.Duration),
			fmt.Sprintf("%.1f%%", share.Percent),
		})
	}
	return renderTable([]string{"Task", "Duration", "Percent"}, rows)
}

// SummaryView renders a working day's summary: the attendance row, the
// per-task breakdown, and any breaks taken.
func SummaryView(s model.Summary, now model.Instant) string {
	end := ""
	if s.End != nil {
		end = s.End.String()
	}

	var b strings.Builder
	b.WriteString(renderTable(
		[]string{"Begin", "End", "Total"},
		[][]string{{s.Begin.String(), end, model.FormatHM(s.Total)}},
	))

	if len(s.TaskDurations) > 0 {
		b.WriteString("\n")
		b.WriteString(TaskShareTable(s))
	}

	if len(s.Breaks) > 0 {
		rows := make([][]string, 0, len(s.Breaks))
		for _, record := range s.Breaks {
			end := ""
			if record.End != nil {
				end = record.End.String()
			}
			rows = append(rows, []string{
				record.Task.FormatName("/"),
				record.Begin.String(),
				end,
				model.FormatHM(record.Duration(now)),
			})
		}
		b.WriteString("\n")
		b.WriteString(renderTable([]string{"Break", "Begin", "End", "Duration"}, rows))
	}
	return b.String()
}
