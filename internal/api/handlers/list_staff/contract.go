package list_staff

import (
	"context"

	"github.com/bellemadame/booking-service/internal/domain"
)

type CatalogService interface {
	ListStaff(ctx context.Context, serviceID int64) ([]*domain.Staff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
