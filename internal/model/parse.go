package model

import (
	"regexp"
	"strconv"
	"time"
)

var (
	timeHMPattern    = regexp.MustCompile(`^([0-9]|[01][0-9]|2[0-3]):?([0-5][0-9])$`)
	datePattern      = regexp.MustCompile(`^(?:([0-9]{4})-?)?(0[1-9]|1[0-2])-?(0[1-9]|[12][0-9]|3[01])$`)
	yearMonthPattern = regexp.MustCompile(`^([0-9]{4})-?(0[1-9]|1[0-2])$`)
)

// parseTimeHM splits H:MM, HH:MM, HMM or HHMM into hour and minute. Without a
// separator the minute is always the trailing two digits.
func parseTimeHM(s string) (int, int, error) {
	m := timeHMPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, &FormatError{Input: s, Want: "time"}
	}
	hour, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return hour, min, nil
}

// parseDate splits YYYY-MM-DD, YYYYMMDD, MM-DD or MMDD into year, month and
// day. A missing year defaults to the current local year.
func parseDate(s string) (int, time.Month, int, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, &FormatError{Input: s, Want: "date"}
	}
	year := time.Now().Year()
	if m[1] != "" {
		year, _ = strconv.Atoi(m[1])
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return year, time.Month(month), day, nil
}

// parseYearMonth splits YYYY-MM or YYYYMM into year and month.
func parseYearMonth(s string) (int, time.Month, error) {
	m := yearMonthPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, &FormatError{Input: s, Want: "year-month"}
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return year, time.Month(month), nil
}
