package model

import (
	"fmt"
	"time"
)

const (
	fullLayout = "2006-01-02T15:04:05"
	hmLayout   = "15:04"
)

// Instant is a local wall-clock timestamp truncated to whole minutes.
// Seconds and sub-second components are always zero.
type Instant struct {
	t time.Time
}

// NewInstant truncates t to the minute.
func NewInstant(t time.Time) Instant {
	return Instant{time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())}
}

// Now is the current local time truncated to the minute. Core operations that
// depend on "now" take it as an explicit argument instead of calling this.
func Now() Instant {
	return NewInstant(time.Now())
}

// ParseFull parses the persistence form YYYY-MM-DDTHH:MM:SS. Seconds in the
// input are discarded.
func ParseFull(s string) (Instant, error) {
	t, err := time.ParseInLocation(fullLayout, s, time.Local)
	if err != nil {
		return Instant{}, &FormatError{Input: s, Want: "datetime"}
	}
	return NewInstant(t), nil
}

// ParseHM parses H:MM, HH:MM, HMM or HHMM and places it on the calendar date
// of ref at second zero.
func ParseHM(s string, ref WorkingDate) (Instant, error) {
	hour, min, err := parseTimeHM(s)
	if err != nil {
		return Instant{}, err
	}
	d := ref.t
	return Instant{time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, d.Location())}, nil
}

// Time returns the underlying minute-truncated time.
func (i Instant) Time() time.Time { return i.t }

func (i Instant) IsZero() bool { return i.t.IsZero() }

func (i Instant) Before(o Instant) bool { return i.t.Before(o.t) }

func (i Instant) After(o Instant) bool { return i.t.After(o.t) }

func (i Instant) Equal(o Instant) bool { return i.t.Equal(o.t) }

// Sub returns the signed duration i minus o.
func (i Instant) Sub(o Instant) time.Duration { return i.t.Sub(o.t) }

// String is the display form HH:MM.
func (i Instant) String() string { return i.t.Format(hmLayout) }

// FullString is the persistence form YYYY-MM-DDTHH:MM:SS.
func (i Instant) FullString() string { return i.t.Format(fullLayout) }

// FormatHM renders a duration as HH:MM computed from total minutes, with a
// leading minus sign for negative durations (74m -> "01:14", -74m -> "-01:14").
func FormatHM(d time.Duration) string {
	minutes := int64(d / time.Minute)
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}
