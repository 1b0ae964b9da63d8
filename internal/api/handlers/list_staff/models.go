package list_staff

import "github.com/bellemadame/booking-service/internal/domain"

// StaffResponse HTTP model for one staff member
type StaffResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StaffListResponse HTTP response model
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// FromDomain converts the roster into the HTTP model.
func FromDomain(staff []*domain.Staff) *StaffListResponse {
	out := make([]StaffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, StaffResponse{ID: s.ID, Name: s.Name})
	}
	return &StaffListResponse{Staff: out}
}
