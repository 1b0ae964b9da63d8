package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in zero-padded "HH:MM" form.
// All slot arithmetic runs on whole minutes from midnight, so comparisons
// are exact; the string form doubles as the wire and storage format.
//
// "24:00" is a valid value for the end of an interval (a booking may run
// up to midnight), but not for a start time.
type TimeString string

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString is returned for values that are not "HH:MM"
	ErrInvalidTimeString = errors.New("invalid time string, expected HH:MM")

	// ErrTimeOutOfRange is returned when arithmetic leaves the 00:00-24:00 range
	ErrTimeOutOfRange = errors.New("time out of range")
)

// NewTimeString builds a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates s.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes converts minutes from midnight into "HH:MM".
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate checks the "HH:MM" shape and range.
func (t TimeString) Validate() error {
	if _, err := t.MinutesFromMidnight(); err != nil {
		return err
	}
	return nil
}

// MinutesFromMidnight parses the value into whole minutes since 00:00.
func (t TimeString) MinutesFromMidnight() (int, error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	var hh, mm int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if mm < 0 || mm > 59 || hh < 0 || hh > 24 || (hh == 24 && mm != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return hh*60 + mm, nil
}

// IsZero reports whether the value is empty (unset).
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsBefore reports whether t is strictly earlier than other.
// Zero-padded "HH:MM" values order lexicographically.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time m minutes later. The result may be "24:00"
// exactly but must not pass midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	base, err := t.MinutesFromMidnight()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(base + m)
}
