package cli

import (
	"fmt"

	"worklog/internal/clock"
	"worklog/internal/config"
	"worklog/internal/model"
	"worklog/internal/prompt"
	"worklog/internal/storage"
)

// clk is swapped for a fixed clock in tests.
var clk clock.Clock = clock.System{}

func now() model.Instant {
	return model.NewInstant(clk.Now())
}

func openStore() (*storage.SQLiteStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}
	return storage.Open(cfg.DatabasePath)
}

// resolveDate turns the -d flag into a working date, defaulting to the
// current working day. A timestamp before 05:00 still counts as the
// previous day.
func resolveDate(flag string) (model.WorkingDate, error) {
	if flag == "" {
		return model.Today(now()), nil
	}
	return model.ParseWorkingDate(flag)
}

func taskOptions(tasks []model.Task) []prompt.Option {
	options := make([]prompt.Option, len(tasks))
	for i, task := range tasks {
		options[i] = prompt.Option{Label: task.FormatName("/"), Detail: task.Description}
	}
	return options
}

func selectTask(title string, tasks []model.Task) (model.Task, error) {
	idx, err := prompt.Select(title, taskOptions(tasks))
	if err != nil {
		return model.Task{}, err
	}
	return tasks[idx], nil
}

func recordLabel(record model.Record) string {
	end := "     "
	if record.End != nil {
		end = record.End.String()
	}
	name := record.Task.FormatName("/")
	if record.IsBreak() {
		name += " (break)"
	}
	return fmt.Sprintf("%s - %s  %s", record.Begin.String(), end, name)
}

func selectRecord(title string, records []model.Record) (model.Record, error) {
	options := make([]prompt.Option, len(records))
	for i, record := range records {
		options[i] = prompt.Option{Label: recordLabel(record)}
	}
	idx, err := prompt.Select(title, options)
	if err != nil {
		return model.Record{}, err
	}
	return records[idx], nil
}

// activeTasks filters the task list down to what start offers.
func activeTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.IsActive {
			out = append(out, task)
		}
	}
	return out
}
