package util

import "time"

// Clock is satisfied by time.Now and by fixed clocks in tests.
type Clock func() time.Time

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
