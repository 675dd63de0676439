package model

import (
	"errors"
	"time"
)

// ErrNoWorkRecords is returned by Summarize when the scope holds no work
// records. Callers check for an empty scope and short-circuit to "no data"
// instead of invoking the engine.
var ErrNoWorkRecords = errors.New("model: no work records to summarize")

// Summary is the derived aggregate over one reporting scope (a day or a
// selected period). It is never persisted; reports rebuild it from records.
type Summary struct {
	// Begin is the earliest begin time among work records.
	Begin Instant
	// End is the latest end among work records that have ended. It is nil
	// only when no work record has ended yet.
	End *Instant
	// Total is the summed duration of all work records, live for open ones.
	Total time.Duration
	// TaskDurations accumulates work durations per formatted task name.
	TaskDurations map[string]time.Duration
	// Breaks lists the break records in input order.
	Breaks []Record
}

// Summarize aggregates records into a Summary. Break records are excluded
// from Begin, End, Total and TaskDurations and collected verbatim in Breaks.
// End is the max of the ends that are present: an open record does not clear
// it as long as some other work record has ended.
func Summarize(records []Record, now Instant) (Summary, error) {
	var (
		begin    Instant
		end      *Instant
		total    time.Duration
		seenWork bool
	)
	durations := make(map[string]time.Duration)
	breaks := make([]Record, 0)

	for _, record := range records {
		if record.IsBreak() {
			breaks = append(breaks, record)
			continue
		}
		if !seenWork || record.Begin.Before(begin) {
			begin = record.Begin
		}
		seenWork = true

		if record.End != nil && (end == nil || record.End.After(*end)) {
			e := *record.End
			end = &e
		}

		d := record.Duration(now)
		total += d
		durations[record.Task.FormatName("/")] += d
	}

	if !seenWork {
		return Summary{}, ErrNoWorkRecords
	}

	return Summary{
		Begin:         begin,
		End:           end,
		Total:         total,
		TaskDurations: durations,
		Breaks:        breaks,
	}, nil
}
