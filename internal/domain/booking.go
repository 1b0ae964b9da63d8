package domain

import (
	"time"

	"github.com/bellemadame/booking-service/pkg/types"
)

// Booking is a committed reservation of a staff member's time. Bookings are
// created only through the booking transaction and never modified after
// commit; service name, price and staff name are denormalized so later
// catalog edits don't rewrite history.
type Booking struct {
	ID              int64
	ClientName      string
	Phone           string
	ServiceID       int64
	StaffID         int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	StaffName    string
	Notes        *string

	CreatedAt time.Time
}

// Interval returns the booking's occupied span of the day.
func (b *Booking) Interval() (Interval, error) {
	return NewInterval(b.StartTime, b.DurationMinutes)
}

// Intervals converts a day's bookings into their occupied spans. Bookings
// with malformed times are skipped; they cannot exist once committed
// through the booking transaction.
func Intervals(bookings []*Booking) []Interval {
	result := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		iv, err := b.Interval()
		if err != nil {
			continue
		}
		result = append(result, iv)
	}
	return result
}
