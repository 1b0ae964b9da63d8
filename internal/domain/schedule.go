package domain

import (
	"time"

	"github.com/bellemadame/booking-service/pkg/types"
)

// DayHours is the open interval for one weekday. Closed days carry no times.
type DayHours struct {
	Open   types.TimeString
	Close  types.TimeString
	Closed bool
}

// OpenMinutes returns the opening time in minutes from midnight.
func (d DayHours) OpenMinutes() (int, error) {
	return d.Open.MinutesFromMidnight()
}

// CloseMinutes returns the closing time in minutes from midnight.
func (d DayHours) CloseMinutes() (int, error) {
	return d.Close.MinutesFromMidnight()
}

// Contains reports whether the interval fits entirely inside the open hours.
func (d DayHours) Contains(i Interval) (bool, error) {
	if d.Closed {
		return false, nil
	}
	open, err := d.OpenMinutes()
	if err != nil {
		return false, err
	}
	closeMin, err := d.CloseMinutes()
	if err != nil {
		return false, err
	}
	return i.StartMinutes >= open && i.EndMinutes <= closeMin, nil
}

// WeeklyHours is the salon's fixed weekly opening-hours template. It is a
// pure lookup keyed by weekday: no persisted state, injected at
// construction so environments and tests can swap the table.
type WeeklyHours struct {
	days [7]DayHours // indexed by time.Weekday (Sunday = 0)
}

// NewWeeklyHours builds a template from a per-weekday table. Weekdays
// missing from the table are closed.
func NewWeeklyHours(table map[time.Weekday]DayHours) WeeklyHours {
	var w WeeklyHours
	for i := range w.days {
		w.days[i] = DayHours{Closed: true}
	}
	for day, hours := range table {
		w.days[day] = hours
	}
	return w
}

// DefaultWeeklyHours is the standing template: open 09:00-19:00 every day,
// with Friday and Saturday closing at 20:00.
func DefaultWeeklyHours() WeeklyHours {
	weekdays := DayHours{Open: "09:00", Close: "19:00"}
	lateDays := DayHours{Open: "09:00", Close: "20:00"}

	return NewWeeklyHours(map[time.Weekday]DayHours{
		time.Monday:    weekdays,
		time.Tuesday:   weekdays,
		time.Wednesday: weekdays,
		time.Thursday:  weekdays,
		time.Friday:    lateDays,
		time.Saturday:  lateDays,
		time.Sunday:    weekdays,
	})
}

// Weekday returns the hours for one weekday, closed or not. Used when
// rendering the full weekly template.
func (w WeeklyHours) Weekday(day time.Weekday) DayHours {
	return w.days[day]
}

// HoursFor returns the open hours for the date's weekday. The second
// return value is false when the salon is closed that day, which callers
// must keep distinct from "open but fully booked".
func (w WeeklyHours) HoursFor(date time.Time) (DayHours, bool) {
	hours := w.days[date.Weekday()]
	if hours.Closed {
		return DayHours{Closed: true}, false
	}
	return hours, true
}
