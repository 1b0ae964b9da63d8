package catalog

import (
	"context"

	"github.com/bellemadame/booking-service/internal/domain"
)

// CatalogRepository is the read-only catalog storage.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	ListStaff(ctx context.Context) ([]*domain.Staff, error)
	ListEligibleStaff(ctx context.Context, serviceID int64) ([]*domain.Staff, error)
}

// Logger is the logging interface for the service.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
