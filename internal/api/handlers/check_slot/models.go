package check_slot

import (
	"time"

	"github.com/bellemadame/booking-service/internal/domain"
	"github.com/bellemadame/booking-service/internal/service/bookings"
	"github.com/bellemadame/booking-service/pkg/types"
)

// CheckSlotRequest HTTP request model
type CheckSlotRequest struct {
	StaffID   int64  `json:"staffId"`
	ServiceID int64  `json:"serviceId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

// SlotStatusResponse HTTP response model
type SlotStatusResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// ToServiceCheck converts the HTTP request into the service model.
func (r *CheckSlotRequest) ToServiceCheck() (bookings.SlotCheck, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return bookings.SlotCheck{}, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return bookings.SlotCheck{}, err
	}

	return bookings.SlotCheck{
		StaffID:   r.StaffID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: startTime,
	}, nil
}
