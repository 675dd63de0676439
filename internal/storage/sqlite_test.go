package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"worklog/internal/model"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "worklog-test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func strp(s string) *string { return &s }

func parseInstant(t *testing.T, s string) model.Instant {
	t.Helper()
	out, err := model.ParseFull(s)
	if err != nil {
		t.Fatalf("parse instant %q: %v", s, err)
	}
	return out
}

func parseDate(t *testing.T, s string) model.WorkingDate {
	t.Helper()
	out, err := model.ParseWorkingDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return out
}

func registerTask(t *testing.T, store *SQLiteStore, level1, level2 string, isBreak bool) {
	t.Helper()
	task := model.Task{IsBreak: isBreak, IsActive: true}
	task.Name[0] = strp(level1)
	if level2 != "" {
		task.Name[1] = strp(level2)
	}
	if err := store.RegisterTask(context.Background(), task); err != nil {
		t.Fatalf("register task: %v", err)
	}
}

func TestRegisterAndListTasks(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	registerTask(t, store, "aaa", "xxx", false)
	registerTask(t, store, "bbb", "", true)

	tasks, err := store.Tasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	first := tasks[0]
	if first.ID == nil || *first.ID != 1 {
		t.Fatalf("expected autoincrement id 1, got %v", first.ID)
	}
	if first.FormatName("/") != "aaa/xxx" {
		t.Fatalf("unexpected name: %q", first.FormatName("/"))
	}
	if first.Name[2] != nil {
		t.Fatal("level 3 should stay unset")
	}
	if !tasks[1].IsBreak {
		t.Fatal("second task should be a break task")
	}
}

func TestRegisterTaskUpdates(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	registerTask(t, store, "aaa", "", false)
	task, err := store.GetTask(ctx, 1)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}

	task.Name[1] = strp("renamed")
	task.Description = "updated"
	if err := store.RegisterTask(ctx, task); err != nil {
		t.Fatalf("update task: %v", err)
	}

	got, err := store.GetTask(ctx, 1)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.FormatName("/") != "aaa/renamed" || got.Description != "updated" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestUnregisterTask(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	registerTask(t, store, "aaa", "", false)
	registerTask(t, store, "bbb", "", false)
	if err := store.UnregisterTask(ctx, 1); err != nil {
		t.Fatalf("unregister: %v", err)
	}

	tasks, err := store.Tasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if tasks[0].IsActive {
		t.Fatal("unregistered task should be inactive")
	}
	if !tasks[1].IsActive {
		t.Fatal("other task should stay active")
	}

	if err := store.UnregisterTask(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	store := setupStore(t)
	if _, err := store.GetTask(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func saveRecord(t *testing.T, store *SQLiteStore, taskID int64, date, begin, end string) {
	t.Helper()
	record := model.Record{
		Task:        model.Task{ID: &taskID},
		WorkingDate: parseDate(t, date),
		Begin:       parseInstant(t, begin),
	}
	if end != "" {
		e := parseInstant(t, end)
		record.End = &e
	}
	if err := store.SaveRecord(context.Background(), record); err != nil {
		t.Fatalf("save record: %v", err)
	}
}

func TestRecordsDenormalizeTaskSnapshot(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	registerTask(t, store, "aaa", "xxx", false)
	saveRecord(t, store, 1, "2021-01-01", "2021-01-01T09:00:00", "2021-01-01T12:00:00")
	saveRecord(t, store, 1, "2021-01-01", "2021-01-01T13:00:00", "")

	records, err := store.Records(ctx)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.ID == nil || *first.ID != 1 {
		t.Fatalf("unexpected record id: %v", first.ID)
	}
	if first.Task.FormatName("/") != "aaa/xxx" {
		t.Fatalf("task snapshot missing: %+v", first.Task)
	}
	if first.Begin.FullString() != "2021-01-01T09:00:00" {
		t.Fatalf("unexpected begin: %s", first.Begin.FullString())
	}
	if first.End == nil || first.End.FullString() != "2021-01-01T12:00:00" {
		t.Fatalf("unexpected end: %v", first.End)
	}
	if first.WorkingDate.String() != "2021-01-01" {
		t.Fatalf("unexpected working date: %s", first.WorkingDate)
	}

	if !records[1].Open() {
		t.Fatal("second record should be open")
	}
}

func TestSaveRecordUpdates(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	registerTask(t, store, "aaa", "", false)
	saveRecord(t, store, 1, "2021-01-01", "2021-01-01T09:00:00", "")

	records, err := store.RecordsByDate(ctx, parseDate(t, "2021-01-01"))
	if err != nil {
		t.Fatalf("records by date: %v", err)
	}
	record := records[0]
	end := parseInstant(t, "2021-01-01T17:00:00")
	record.End = &end
	if err := store.SaveRecord(ctx, record); err != nil {
		t.Fatalf("update record: %v", err)
	}

	records, err = store.RecordsByDate(ctx, parseDate(t, "2021-01-01"))
	if err != nil {
		t.Fatalf("records by date: %v", err)
	}
	if records[0].End == nil || records[0].End.FullString() != "2021-01-01T17:00:00" {
		t.Fatalf("end not persisted: %v", records[0].End)
	}
}

func TestSaveRecordRejectsInvertedInterval(t *testing.T) {
	store := setupStore(t)

	begin := parseInstant(t, "2021-01-01T17:00:00")
	end := parseInstant(t, "2021-01-01T09:00:00")
	record := model.Record{
		WorkingDate: parseDate(t, "2021-01-01"),
		Begin:       begin,
		End:         &end,
	}
	err := store.SaveRecord(context.Background(), record)
	var le *model.LogicError
	if !errors.As(err, &le) {
		t.Fatalf("expected LogicError, got %v", err)
	}

	records, listErr := store.Records(context.Background())
	if listErr != nil {
		t.Fatalf("records: %v", listErr)
	}
	if len(records) != 0 {
		t.Fatal("invalid record must not be persisted")
	}
}

func TestRecordsByDateAndPeriod(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	registerTask(t, store, "aaa", "", false)
	saveRecord(t, store, 1, "2021-01-01", "2021-01-01T09:00:00", "2021-01-01T12:00:00")
	saveRecord(t, store, 1, "2021-01-02", "2021-01-02T09:00:00", "2021-01-02T15:00:00")
	saveRecord(t, store, 1, "2021-01-03", "2021-01-03T09:00:00", "2021-01-03T17:30:00")
	saveRecord(t, store, 1, "2021-01-05", "2021-01-05T09:00:00", "2021-01-05T17:30:00")

	byDate, err := store.RecordsByDate(ctx, parseDate(t, "2021-01-02"))
	if err != nil {
		t.Fatalf("records by date: %v", err)
	}
	if len(byDate) != 1 || byDate[0].WorkingDate.String() != "2021-01-02" {
		t.Fatalf("unexpected by-date result: %v", byDate)
	}

	period, err := store.RecordsInPeriod(ctx, parseDate(t, "2021-01-02"), parseDate(t, "2021-01-03"))
	if err != nil {
		t.Fatalf("records in period: %v", err)
	}
	if len(period) != 2 {
		t.Fatalf("expected 2 records in period, got %d", len(period))
	}
	if period[0].WorkingDate.String() != "2021-01-02" || period[1].WorkingDate.String() != "2021-01-03" {
		t.Fatalf("unexpected period ordering: %v", period)
	}
}

func TestCurrentOpenRecord(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	date := parseDate(t, "2021-01-01")

	// Empty day: nothing open.
	open, err := store.CurrentOpenRecord(ctx, date)
	if err != nil {
		t.Fatalf("current open record: %v", err)
	}
	if open != nil {
		t.Fatalf("expected nil on empty day, got %v", open)
	}

	registerTask(t, store, "aaa", "", false)
	saveRecord(t, store, 1, "2021-01-01", "2021-01-01T09:00:00", "2021-01-01T12:00:00")
	saveRecord(t, store, 1, "2021-01-01", "2021-01-01T13:00:00", "")

	open, err = store.CurrentOpenRecord(ctx, date)
	if err != nil {
		t.Fatalf("current open record: %v", err)
	}
	if open == nil {
		t.Fatal("expected the running record")
	}
	if open.Begin.FullString() != "2021-01-01T13:00:00" {
		t.Fatalf("unexpected open record: %s", open.Begin.FullString())
	}

	// Close it: the day is complete.
	end := parseInstant(t, "2021-01-01T17:30:00")
	open.End = &end
	if err := store.SaveRecord(ctx, *open); err != nil {
		t.Fatalf("save record: %v", err)
	}
	open, err = store.CurrentOpenRecord(ctx, date)
	if err != nil {
		t.Fatalf("current open record: %v", err)
	}
	if open != nil {
		t.Fatalf("expected nil after closing, got %v", open)
	}
}

func TestDeleteRecord(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	registerTask(t, store, "aaa", "", false)
	saveRecord(t, store, 1, "2021-01-01", "2021-01-01T09:00:00", "2021-01-01T12:00:00")

	if err := store.DeleteRecord(ctx, 1); err != nil {
		t.Fatalf("delete record: %v", err)
	}
	if err := store.DeleteRecord(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResetDropsData(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	registerTask(t, store, "aaa", "", false)
	saveRecord(t, store, 1, "2021-01-01", "2021-01-01T09:00:00", "2021-01-01T12:00:00")

	if err := store.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	tasks, err := store.Tasks(ctx)
	if err != nil {
		t.Fatalf("tasks after reset: %v", err)
	}
	records, err := store.Records(ctx)
	if err != nil {
		t.Fatalf("records after reset: %v", err)
	}
	if len(tasks) != 0 || len(records) != 0 {
		t.Fatalf("reset left data behind: %d tasks, %d records", len(tasks), len(records))
	}
}
