package domain

import "time"

// Interval is a half-open time range [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether a and b share any instant.
// Touching endpoints (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// BusyInterval is an occupied range reported by the calendar
type BusyInterval struct {
	Interval
	AllDay bool
	// Source identifier on the calendar side, informational only
	EventID string
}

// IsComplete returns false when the calendar omitted start or end
func (b BusyInterval) IsComplete() bool {
	return !b.Start.IsZero() && !b.End.IsZero()
}

// ConflictsWith returns true if candidate overlaps any complete busy interval.
// Incomplete busy intervals are skipped.
func ConflictsWith(candidate Interval, busy []BusyInterval) bool {
	for _, b := range busy {
		if !b.IsComplete() {
			continue
		}
		if Overlaps(candidate, b.Interval) {
			return true
		}
	}
	return false
}
