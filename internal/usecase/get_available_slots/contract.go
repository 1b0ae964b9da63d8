package get_available_slots

import (
	"context"
	"time"

	"github.com/bellemadame/booking-service/internal/domain"
)

// BookingRepository is the ledger read side the calculator depends on.
type BookingRepository interface {
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Booking, error)
}

// CatalogRepository provides the service duration and staff identity.
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
}

// Logger is the logging interface for the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
