package create_booking

import (
	"time"

	"github.com/bellemadame/booking-service/pkg/types"
)

// Request carries the client's booking submission. Duration and price are
// never accepted from the client; they come from the service catalog.
type Request struct {
	ClientName string
	Phone      string
	ServiceID  int64
	StaffID    int64
	Date       time.Time
	StartTime  types.TimeString
	Notes      *string
}

// Response is the committed booking as confirmed to the client.
type Response struct {
	BookingID       int64
	ClientName      string
	ServiceName     string
	ServicePrice    float64
	StaffName       string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	CreatedAt       time.Time
}
