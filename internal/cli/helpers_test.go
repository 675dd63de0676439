package cli

import (
	"testing"
	"time"

	"worklog/internal/clock"
	"worklog/internal/model"
)

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := clk
	clk = clock.Fixed{T: at}
	t.Cleanup(func() { clk = prev })
}

func TestResolveDateDefaultsToToday(t *testing.T) {
	fixClock(t, time.Date(2021, 1, 2, 10, 0, 0, 0, time.Local))

	date, err := resolveDate("")
	if err != nil {
		t.Fatalf("resolve date: %v", err)
	}
	if date.String() != "2021-01-02" {
		t.Fatalf("expected 2021-01-02, got %s", date)
	}
}

func TestResolveDateBeforeCutoff(t *testing.T) {
	// 02:30 belongs to the previous working day.
	fixClock(t, time.Date(2021, 1, 2, 2, 30, 0, 0, time.Local))

	date, err := resolveDate("")
	if err != nil {
		t.Fatalf("resolve date: %v", err)
	}
	if date.String() != "2021-01-01" {
		t.Fatalf("expected 2021-01-01, got %s", date)
	}
}

func TestResolveDateParsesFlag(t *testing.T) {
	date, err := resolveDate("20210115")
	if err != nil {
		t.Fatalf("resolve date: %v", err)
	}
	if date.String() != "2021-01-15" {
		t.Fatalf("expected 2021-01-15, got %s", date)
	}

	if _, err := resolveDate("not-a-date"); err == nil {
		t.Fatal("expected an error for a malformed date")
	}
}

func TestTaskOptions(t *testing.T) {
	name := "dev"
	sub := "api"
	tasks := []model.Task{{Name: [model.NameLevels]*string{&name, &sub}, Description: "backend work"}}

	options := taskOptions(tasks)
	if options[0].Label != "dev/api" {
		t.Fatalf("unexpected label: %q", options[0].Label)
	}
	if options[0].Detail != "backend work" {
		t.Fatalf("unexpected detail: %q", options[0].Detail)
	}
}

func TestActiveTasks(t *testing.T) {
	a := "a"
	b := "b"
	tasks := []model.Task{
		{Name: [model.NameLevels]*string{&a}, IsActive: true},
		{Name: [model.NameLevels]*string{&b}, IsActive: false},
	}

	active := activeTasks(tasks)
	if len(active) != 1 || *active[0].Name[0] != "a" {
		t.Fatalf("unexpected active tasks: %v", active)
	}
}

func TestRecordLabel(t *testing.T) {
	name := "dev"
	begin, err := model.ParseFull("2021-01-01T09:00:00")
	if err != nil {
		t.Fatalf("parse begin: %v", err)
	}
	end, err := model.ParseFull("2021-01-01T12:00:00")
	if err != nil {
		t.Fatalf("parse end: %v", err)
	}

	record := model.Record{
		Task:  model.Task{Name: [model.NameLevels]*string{&name}, IsActive: true},
		Begin: begin,
		End:   &end,
	}
	if got := recordLabel(record); got != "09:00 - 12:00  dev" {
		t.Fatalf("unexpected label: %q", got)
	}

	// Break records keep their task name so distinct breaks stay apart.
	record.End = nil
	record.Task.IsBreak = true
	if got := recordLabel(record); got != "09:00 -        dev (break)" {
		t.Fatalf("unexpected open break label: %q", got)
	}
}
