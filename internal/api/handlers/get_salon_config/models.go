package get_salon_config

import (
	"time"

	"github.com/bellemadame/booking-service/internal/domain"
)

// DayHoursResponse HTTP model for one weekday's hours
type DayHoursResponse struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed"`
}

// SalonResponse HTTP response model
type SalonResponse struct {
	BusinessName    string                      `json:"businessName"`
	Currency        string                      `json:"currency"`
	SlotStepMinutes int                         `json:"slotStepMinutes"`
	Hours           map[string]DayHoursResponse `json:"hours"`
}

// BuildResponse renders the salon profile and weekly hours template.
func BuildResponse(businessName, currency string, hours domain.WeeklyHours) *SalonResponse {
	days := make(map[string]DayHoursResponse, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := hours.Weekday(wd)
		if day.Closed {
			days[wd.String()] = DayHoursResponse{Closed: true}
			continue
		}
		days[wd.String()] = DayHoursResponse{
			Open:  day.Open.String(),
			Close: day.Close.String(),
		}
	}

	return &SalonResponse{
		BusinessName:    businessName,
		Currency:        currency,
		SlotStepMinutes: domain.SlotStepMinutes,
		Hours:           days,
	}
}
