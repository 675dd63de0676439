package model

import (
	"fmt"
	"time"
)

// Record is one logged interval of work or break time. The embedded task is a
// snapshot of the task at load time, not a live reference. A nil End means
// the record is still running.
type Record struct {
	ID          *int64
	Task        Task
	WorkingDate WorkingDate
	Begin       Instant
	End         *Instant
}

// IsBreak reports whether the record counts as break time.
func (r Record) IsBreak() bool { return r.Task.IsBreak }

// Open reports whether the record has no end yet.
func (r Record) Open() bool { return r.End == nil }

// Duration is end minus begin, or now minus begin while the record is open.
// Open-record durations are recomputed on every read, never persisted.
func (r Record) Duration(now Instant) time.Duration {
	if r.End != nil {
		return r.End.Sub(r.Begin)
	}
	return now.Sub(r.Begin)
}

// Validate rejects intervals that end before they begin.
func (r Record) Validate() error {
	if r.End != nil && r.End.Before(r.Begin) {
		return &LogicError{Message: fmt.Sprintf("end time %s is earlier than begin time %s", r.End, r.Begin)}
	}
	return nil
}
