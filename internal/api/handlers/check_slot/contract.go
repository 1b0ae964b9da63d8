package check_slot

import (
	"context"

	"github.com/bellemadame/booking-service/internal/service/bookings"
)

type BookingService interface {
	CheckSlot(ctx context.Context, check bookings.SlotCheck) (*bookings.SlotStatus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
