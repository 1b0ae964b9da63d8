package get_available_slots

import (
	"github.com/bellemadame/booking-service/internal/domain"
	getAvailableSlots "github.com/bellemadame/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StaffID         int64    `json:"staffId"`
	ServiceID       int64    `json:"serviceId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Closed          bool     `json:"closed"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
// Slots is always a JSON array, never null: an open day with no free slots
// serializes as closed=false, slots=[].
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		StaffID:         resp.StaffID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Closed:          resp.Closed,
		Slots:           slots,
	}
}
