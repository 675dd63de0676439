package storage

import (
	"context"
	"errors"

	"worklog/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// Store is the persistence boundary for tasks and records. The core treats it
// as an external collaborator; any backend satisfying these operations works.
type Store interface {
	// RegisterTask inserts the task, or updates it when its id is set.
	RegisterTask(ctx context.Context, task model.Task) error
	// UnregisterTask deactivates a task. Its history stays intact.
	UnregisterTask(ctx context.Context, id int64) error
	Tasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)

	// SaveRecord inserts the record, or updates it when its id is set.
	SaveRecord(ctx context.Context, record model.Record) error
	DeleteRecord(ctx context.Context, id int64) error
	Records(ctx context.Context) ([]model.Record, error)
	RecordsByDate(ctx context.Context, date model.WorkingDate) ([]model.Record, error)
	RecordsInPeriod(ctx context.Context, from, to model.WorkingDate) ([]model.Record, error)
	// CurrentOpenRecord returns the working date's still-running record, or
	// nil when the day's latest record has ended or the day is empty.
	CurrentOpenRecord(ctx context.Context, date model.WorkingDate) (*model.Record, error)
}
