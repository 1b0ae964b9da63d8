package create_booking

import (
	"time"

	"github.com/bellemadame/booking-service/internal/domain"
	createBooking "github.com/bellemadame/booking-service/internal/usecase/create_booking"
	"github.com/bellemadame/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName string  `json:"clientName"`
	Phone      string  `json:"phone"`
	ServiceID  int64   `json:"serviceId"`
	StaffID    int64   `json:"staffId"`
	Date       string  `json:"date"`      // "2026-09-15"
	StartTime  string  `json:"startTime"` // "10:00"
	Notes      *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ClientName      string  `json:"clientName"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	StaffName       string  `json:"staffName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and start time.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientName: r.ClientName,
		Phone:      r.Phone,
		ServiceID:  r.ServiceID,
		StaffID:    r.StaffID,
		Date:       date,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.BookingID,
		ClientName:      resp.ClientName,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		StaffName:       resp.StaffName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
