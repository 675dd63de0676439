package report

import (
	"strconv"

	"worklog/internal/model"
)

// TaskTable renders the registered tasks. Inactive tasks are skipped
// unless all is set.
func TaskTable(tasks []model.Task, all bool) string {
	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		if !task.IsActive && !all {
			continue
		}
		id := ""
		if task.ID != nil {
			id = strconv.FormatInt(*task.ID, 10)
		}
		kind := "work"
		if task.IsBreak {
			kind = "break"
		}
		state := "active"
		if !task.IsActive {
			state = "inactive"
		}
		rows = append(rows, []string{id, task.FormatName("/"), task.Description, kind, state})
	}
	if len(rows) == 0 {
		return emptyStyle.Render("No Tasks")
	}
	return renderTable([]string{"ID", "Name", "Description", "Kind", "State"}, rows)
}
