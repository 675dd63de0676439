package model

import "strings"

// NameLevels is the number of hierarchy slots in a task name.
const NameLevels = 3

// Task is one entry of the task taxonomy. The name keeps its three levels as
// positional nullable slots: an unset level stays unset even when a later
// level is filled, and levels are never compacted.
type Task struct {
	ID          *int64
	Name        [NameLevels]*string
	Description string
	IsBreak     bool
	IsActive    bool
}

// DefaultTask is the template offered when registering a brand-new task.
func DefaultTask() Task {
	return Task{IsActive: true}
}

// FormatName joins the set name levels with sep, skipping unset slots.
func (t Task) FormatName(sep string) string {
	parts := make([]string, 0, NameLevels)
	for _, level := range t.Name {
		if level != nil {
			parts = append(parts, *level)
		}
	}
	return strings.Join(parts, sep)
}
