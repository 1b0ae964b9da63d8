package get_booking

import (
	"time"

	"github.com/bellemadame/booking-service/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ClientName      string  `json:"clientName"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	StaffID         int64   `json:"staffId"`
	StaffName       string  `json:"staffName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// FromDomain converts a booking into the HTTP model.
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		ClientName:      b.ClientName,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		ServicePrice:    b.ServicePrice,
		StaffID:         b.StaffID,
		StaffName:       b.StaffName,
		Date:            b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
