package get_salon_config

import (
	"net/http"

	"github.com/bellemadame/booking-service/internal/api/handlers"
	"github.com/bellemadame/booking-service/internal/domain"
)

// Handler serves the salon profile. The response is fixed at startup from
// configuration, so it is built once and reused.
type Handler struct {
	response *SalonResponse
	logger   Logger
}

func NewHandler(businessName, currency string, hours domain.WeeklyHours, logger Logger) *Handler {
	return &Handler{
		response: BuildResponse(businessName, currency, hours),
		logger:   logger,
	}
}

// Handle GET /api/v1/salon
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
