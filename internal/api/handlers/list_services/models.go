package list_services

import "github.com/bellemadame/booking-service/internal/domain"

// ServiceResponse HTTP model for one catalog entry
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Category        string  `json:"category"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServicesListResponse HTTP response model
type ServicesListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomain converts the catalog entries into the HTTP model.
func FromDomain(services []*domain.Service) *ServicesListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{
			ID:              s.ID,
			Category:        s.Category,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return &ServicesListResponse{Services: out}
}
