package reminders

import (
	"context"
	"time"

	"github.com/bellemadame/booking-service/internal/domain"
	"github.com/bellemadame/booking-service/internal/integrations/smsgateway"
)

// BookingRepository feeds the reminder run with tomorrow's bookings.
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Notifier sends the reminder SMS.
type Notifier interface {
	SendBookingReminder(ctx context.Context, rem smsgateway.Reminder) error
}

// TimeProvider supplies "now" so tests can pin the run date.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging interface for the service.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
