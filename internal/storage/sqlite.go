package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"worklog/internal/model"
)

// Persisted forms: dates as YYYY-MM-DD, timestamps as YYYY-MM-DD HH:MM:SS.
const (
	sqliteDateLayout = "2006-01-02"
	sqliteTimeLayout = "2006-01-02 15:04:05"
)

const recordColumns = `
	r.id, r.working_date, r.begin_time, r.end_time,
	t.id, t.level1, t.level2, t.level3, t.description, t.is_break, t.is_active`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Open opens (creating if needed) the database at path and applies pending
// migrations.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Reset drops both tables and recreates them empty.
func (s *SQLiteStore) Reset() error {
	return resetSchema(s.db)
}

func (s *SQLiteStore) RegisterTask(ctx context.Context, task model.Task) error {
	if task.ID != nil {
		res, err := s.db.ExecContext(ctx, `
			UPDATE tasks
			SET level1 = ?, level2 = ?, level3 = ?, description = ?, is_break = ?, is_active = ?
			WHERE id = ?`,
			nullString(task.Name[0]), nullString(task.Name[1]), nullString(task.Name[2]),
			task.Description, boolInt(task.IsBreak), boolInt(task.IsActive), *task.ID,
		)
		if err != nil {
			return err
		}
		return checkRowsAffected(res)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (level1, level2, level3, description, is_break, is_active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		nullString(task.Name[0]), nullString(task.Name[1]), nullString(task.Name[2]),
		task.Description, boolInt(task.IsBreak), boolInt(task.IsActive),
	)
	return err
}

func (s *SQLiteStore) UnregisterTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) Tasks(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, level1, level2, level3, description, is_break, is_active
		FROM tasks
		ORDER BY level1, level2, level3`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) GetTask(ctx context.Context, id int64) (model.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, level1, level2, level3, description, is_break, is_active
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, err
	}
	return task, nil
}

func (s *SQLiteStore) SaveRecord(ctx context.Context, record model.Record) error {
	// Reject inverted intervals before they reach disk.
	if err := record.Validate(); err != nil {
		return err
	}
	if record.ID != nil {
		res, err := s.db.ExecContext(ctx, `
			UPDATE records
			SET task_id = ?, working_date = ?, begin_time = ?, end_time = ?
			WHERE id = ?`,
			nullID(record.Task.ID), record.WorkingDate.String(),
			formatInstant(record.Begin), nullInstant(record.End), *record.ID,
		)
		if err != nil {
			return err
		}
		return checkRowsAffected(res)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (task_id, working_date, begin_time, end_time)
		VALUES (?, ?, ?, ?)`,
		nullID(record.Task.ID), record.WorkingDate.String(),
		formatInstant(record.Begin), nullInstant(record.End),
	)
	return err
}

func (s *SQLiteStore) DeleteRecord(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) Records(ctx context.Context) ([]model.Record, error) {
	return s.queryRecords(ctx, `
		SELECT `+recordColumns+`
		FROM records AS r
		LEFT JOIN tasks AS t ON r.task_id = t.id
		ORDER BY r.working_date, r.begin_time`)
}

func (s *SQLiteStore) RecordsByDate(ctx context.Context, date model.WorkingDate) ([]model.Record, error) {
	return s.queryRecords(ctx, `
		SELECT `+recordColumns+`
		FROM records AS r
		LEFT JOIN tasks AS t ON r.task_id = t.id
		WHERE r.working_date = ?
		ORDER BY r.working_date, r.begin_time`,
		date.String())
}

func (s *SQLiteStore) RecordsInPeriod(ctx context.Context, from, to model.WorkingDate) ([]model.Record, error) {
	return s.queryRecords(ctx, `
		SELECT `+recordColumns+`
		FROM records AS r
		LEFT JOIN tasks AS t ON r.task_id = t.id
		WHERE r.working_date BETWEEN ? AND ?
		ORDER BY r.working_date, r.begin_time`,
		from.String(), to.String())
}

func (s *SQLiteStore) CurrentOpenRecord(ctx context.Context, date model.WorkingDate) (*model.Record, error) {
	records, err := s.queryRecords(ctx, `
		SELECT `+recordColumns+`
		FROM (SELECT * FROM records WHERE working_date = ? ORDER BY begin_time DESC LIMIT 1) AS r
		LEFT JOIN tasks AS t ON r.task_id = t.id`,
		date.String())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || !records[0].Open() {
		return nil, nil
	}
	record := records[0]
	return &record, nil
}

func (s *SQLiteStore) queryRecords(ctx context.Context, query string, args ...any) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Record, 0)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func nullString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullID(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func formatInstant(v model.Instant) string {
	return v.Time().Format(sqliteTimeLayout)
}

func nullInstant(v *model.Instant) any {
	if v == nil {
		return nil
	}
	return formatInstant(*v)
}

func parseStoredInstant(v string) (model.Instant, error) {
	t, err := time.ParseInLocation(sqliteTimeLayout, v, time.Local)
	if err != nil {
		return model.Instant{}, fmt.Errorf("parse stored timestamp %q: %w", v, err)
	}
	return model.NewInstant(t), nil
}

func parseStoredDate(v string) (model.WorkingDate, error) {
	t, err := time.ParseInLocation(sqliteDateLayout, v, time.Local)
	if err != nil {
		return model.WorkingDate{}, fmt.Errorf("parse stored date %q: %w", v, err)
	}
	return model.NewWorkingDate(t.Year(), t.Month(), t.Day()), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		id          int64
		levels      [model.NameLevels]sql.NullString
		description sql.NullString
		isBreak     int
		isActive    int
	)
	if err := s.Scan(&id, &levels[0], &levels[1], &levels[2], &description, &isBreak, &isActive); err != nil {
		return model.Task{}, err
	}
	task := model.Task{
		ID:          &id,
		Description: description.String,
		IsBreak:     isBreak != 0,
		IsActive:    isActive != 0,
	}
	for i, level := range levels {
		if level.Valid {
			value := level.String
			task.Name[i] = &value
		}
	}
	return task, nil
}

func scanRecord(s scanner) (model.Record, error) {
	var (
		id          int64
		date        string
		begin       string
		end         sql.NullString
		taskID      sql.NullInt64
		levels      [model.NameLevels]sql.NullString
		description sql.NullString
		isBreak     sql.NullInt64
		isActive    sql.NullInt64
	)
	if err := s.Scan(
		&id, &date, &begin, &end,
		&taskID, &levels[0], &levels[1], &levels[2], &description, &isBreak, &isActive,
	); err != nil {
		return model.Record{}, err
	}

	// Denormalize the joined task into a snapshot owned by the record.
	task := model.Task{
		Description: description.String,
		IsBreak:     isBreak.Valid && isBreak.Int64 != 0,
		IsActive:    isActive.Valid && isActive.Int64 != 0,
	}
	if taskID.Valid {
		task.ID = &taskID.Int64
	}
	for i, level := range levels {
		if level.Valid {
			value := level.String
			task.Name[i] = &value
		}
	}

	workingDate, err := parseStoredDate(date)
	if err != nil {
		return model.Record{}, err
	}
	beginAt, err := parseStoredInstant(begin)
	if err != nil {
		return model.Record{}, err
	}

	record := model.Record{
		ID:          &id,
		Task:        task,
		WorkingDate: workingDate,
		Begin:       beginAt,
	}
	if end.Valid {
		endAt, parseErr := parseStoredInstant(end.String)
		if parseErr != nil {
			return model.Record{}, parseErr
		}
		record.End = &endAt
	}
	return record, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
