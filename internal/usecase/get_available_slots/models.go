package get_available_slots

import (
	"time"

	"github.com/bellemadame/booking-service/pkg/types"
)

// Request asks for the free start times of one staff member on one date,
// for a service whose duration determines how much room each slot needs.
type Request struct {
	StaffID   int64
	ServiceID int64
	Date      time.Time
}

// Response lists the free start times in ascending order. Closed is true
// when the salon has no hours on that date; callers must distinguish
// "closed" from "open but fully booked", which is Closed=false with an
// empty Slots list.
type Response struct {
	StaffID         int64
	ServiceID       int64
	Date            time.Time
	DurationMinutes int
	Closed          bool
	Slots           []types.TimeString
}
