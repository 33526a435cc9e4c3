package domain

import (
	"fmt"
	"time"
)

// TimeSlot represents a half-open time interval [Start, End).
// It is a transient value: derived from reservations of a single space,
// never persisted.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Intervals that merely touch (one ends exactly where the other starts)
// do NOT overlap: a reservation ending at 10:00 does not conflict with
// one starting at 10:00.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

// Duration returns the length of the interval
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// DurationMinutes returns the length of the interval in whole minutes
func (s TimeSlot) DurationMinutes() int64 {
	return int64(s.Duration().Minutes())
}

// String implements fmt.Stringer for logs
func (s TimeSlot) String() string {
	return fmt.Sprintf("[%s - %s)", s.Start.Format(DateTimeFormat), s.End.Format(DateTimeFormat))
}
