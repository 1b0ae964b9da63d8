package domain

import "github.com/bellemadame/booking-service/pkg/types"

// Interval is a half-open [start, end) span of a day, in whole minutes
// from midnight. It is the single representation used both when listing
// free slots and when re-checking a slot at commit time, so the two checks
// cannot drift apart.
type Interval struct {
	StartMinutes int
	EndMinutes   int
}

// NewInterval builds an interval from a start time and a duration.
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	startMin, err := start.MinutesFromMidnight()
	if err != nil {
		return Interval{}, err
	}
	return Interval{StartMinutes: startMin, EndMinutes: startMin + durationMinutes}, nil
}

// Overlaps reports whether i and other truly intersect. Touching endpoints
// do not overlap: a booking ending 10:00 and one starting 10:00 are
// back-to-back, not in conflict.
func (i Interval) Overlaps(other Interval) bool {
	return i.StartMinutes < other.EndMinutes && i.EndMinutes > other.StartMinutes
}

// Start returns the interval start as "HH:MM".
func (i Interval) Start() types.TimeString {
	ts, _ := types.NewTimeStringFromMinutes(i.StartMinutes)
	return ts
}

// IsFree reports whether candidate overlaps none of the booked intervals.
// The booked set is small (one staff member, one day), a linear scan is
// all it takes.
func IsFree(candidate Interval, booked []Interval) bool {
	for _, b := range booked {
		if candidate.Overlaps(b) {
			return false
		}
	}
	return true
}
