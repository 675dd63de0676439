package model

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// dayStartHour is the hour at which a working day begins. Instants before
// 05:00 belong to the previous calendar day's working date.
const dayStartHour = 5

// WorkingDate is a calendar date under the working-day rule: a logical day
// runs from 05:00 local time to 04:59 the next calendar day.
type WorkingDate struct {
	t time.Time
}

// NewWorkingDate builds the working date for the given calendar day.
func NewWorkingDate(year int, month time.Month, day int) WorkingDate {
	return WorkingDate{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseWorkingDate parses YYYY-MM-DD, YYYYMMDD, MM-DD or MMDD. A missing year
// defaults to the current local year.
func ParseWorkingDate(s string) (WorkingDate, error) {
	year, month, day, err := parseDate(s)
	if err != nil {
		return WorkingDate{}, err
	}
	d := NewWorkingDate(year, month, day)
	// time.Date normalizes impossible days (Feb 31 becomes Mar 3);
	// such input is a typo, not a date.
	if d.t.Day() != day || d.t.Month() != month {
		return WorkingDate{}, &FormatError{Input: s, Want: "date"}
	}
	return d, nil
}

// ParseYearMonth parses YYYY-MM or YYYYMM and returns the first and last day
// of that month.
func ParseYearMonth(s string) (WorkingDate, WorkingDate, error) {
	year, month, err := parseYearMonth(s)
	if err != nil {
		return WorkingDate{}, WorkingDate{}, err
	}
	first := NewWorkingDate(year, month, 1)
	last := WorkingDate{first.t.AddDate(0, 1, -1)}
	return first, last, nil
}

// WorkingDateOf maps an instant to its working date: before 05:00 the instant
// still belongs to the previous calendar day.
func WorkingDateOf(i Instant) WorkingDate {
	t := i.t
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Hour() < dayStartHour {
		date = date.AddDate(0, 0, -1)
	}
	return WorkingDate{date}
}

// Today is the working date of now.
func Today(now Instant) WorkingDate {
	return WorkingDateOf(now)
}

// AndHM builds the instant for hour:min on this working date. Times before
// 05:00 land on the next calendar day, inverting WorkingDateOf.
func (d WorkingDate) AndHM(hour, min int) (Instant, error) {
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return Instant{}, &FormatError{Input: fmt.Sprintf("%d:%02d", hour, min), Want: "time"}
	}
	day := d.t
	if hour < dayStartHour {
		day = day.AddDate(0, 0, 1)
	}
	return Instant{time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())}, nil
}

// ParseWithDate parses a bare time string the way a user types it for a
// working day: tolerant HH:MM parsing plus the 05:00 rollover of AndHM.
func ParseWithDate(d WorkingDate, s string) (Instant, error) {
	hour, min, err := parseTimeHM(s)
	if err != nil {
		return Instant{}, err
	}
	return d.AndHM(hour, min)
}

// Time returns the underlying calendar day at midnight local time.
func (d WorkingDate) Time() time.Time { return d.t }

func (d WorkingDate) IsZero() bool { return d.t.IsZero() }

func (d WorkingDate) Before(o WorkingDate) bool { return d.t.Before(o.t) }

func (d WorkingDate) After(o WorkingDate) bool { return d.t.After(o.t) }

func (d WorkingDate) Equal(o WorkingDate) bool { return d.t.Equal(o.t) }

// AddDays returns the working date n days later (or earlier when negative).
func (d WorkingDate) AddDays(n int) WorkingDate {
	return WorkingDate{d.t.AddDate(0, 0, n)}
}

// String is the persistence form YYYY-MM-DD.
func (d WorkingDate) String() string { return d.t.Format(dateLayout) }
