package create_booking

import (
	"context"
	"time"

	"github.com/bellemadame/booking-service/internal/domain"
	"github.com/bellemadame/booking-service/internal/integrations/smsgateway"
)

// BookingRepository is the write side of the booking ledger plus the
// locked read used for the commit-time re-check.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Booking, error)
}

// CatalogRepository resolves the service and staff referenced by a request.
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
}

// ContactValidator checks the client phone number format.
type ContactValidator interface {
	IsValid(phone string) bool
}

// Notifier sends the confirmation SMS after the booking is committed.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, conf smsgateway.Confirmation) error
}

// TransactionManager runs the check-then-insert inside one serializable
// transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies "now" for past-date validation so tests can pin it.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging interface for the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
