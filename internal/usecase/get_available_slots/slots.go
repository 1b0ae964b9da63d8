package get_available_slots

import (
	"fmt"

	"github.com/bellemadame/booking-service/internal/domain"
	"github.com/bellemadame/booking-service/pkg/types"
)

// generateFreeSlots walks the day in fixed 30-minute steps from opening
// time and keeps every candidate whose full service interval fits before
// closing and overlaps no existing booking. Candidates start on the step
// grid even when the service duration is not a multiple of the step, so a
// 45-minute service still offers 09:00, 09:30, 10:00 and so on.
func generateFreeSlots(day domain.DayHours, durationMinutes int, booked []domain.Interval) ([]types.TimeString, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}

	openMinutes, err := day.OpenMinutes()
	if err != nil {
		return nil, fmt.Errorf("invalid opening time: %w", err)
	}

	closeMinutes, err := day.CloseMinutes()
	if err != nil {
		return nil, fmt.Errorf("invalid closing time: %w", err)
	}

	slots := make([]types.TimeString, 0)
	for start := openMinutes; start+durationMinutes <= closeMinutes; start += domain.SlotStepMinutes {
		candidate := domain.Interval{StartMinutes: start, EndMinutes: start + durationMinutes}
		if domain.IsFree(candidate, booked) {
			slots = append(slots, candidate.Start())
		}
	}

	return slots, nil
}
