package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/bellemadame/booking-service/internal/domain"
	catalogRepo "github.com/bellemadame/booking-service/internal/infra/storage/catalog"
)

// Service exposes the service menu and the staff roster.
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService creates the catalog service.
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListServices returns the full menu grouped by category ordering.
func (s *Service) ListServices(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}
	return services, nil
}

// ListStaff returns the staff roster. With serviceID > 0 the list is
// narrowed to the staff eligible for that service; a service with no
// eligibility rows is unrestricted and yields the full roster.
func (s *Service) ListStaff(ctx context.Context, serviceID int64) ([]*domain.Staff, error) {
	if serviceID < 0 {
		return nil, fmt.Errorf("%w: serviceId must not be negative", ErrInvalidInput)
	}

	if serviceID == 0 {
		staff, err := s.repo.ListStaff(ctx)
		if err != nil {
			s.logger.Error("ListStaff: %v", err)
			return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
		}
		return staff, nil
	}

	if _, err := s.repo.GetService(ctx, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("ListStaff: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	staff, err := s.repo.ListEligibleStaff(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListStaff: failed to list eligible staff for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to list eligible staff: %v", ErrInternal, err)
	}
	return staff, nil
}
