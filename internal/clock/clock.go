// Package clock abstracts wall-clock access so time-dependent logic stays
// deterministic under test.
package clock

import "time"

// Clock yields the current time.
type Clock interface {
	Now() time.Time
}

// System reads the process wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same time.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
