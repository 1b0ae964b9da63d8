package list_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bellemadame/booking-service/internal/api/handlers"
	"github.com/bellemadame/booking-service/internal/service/catalog"
)

const (
	msgInvalidServiceID = "invalid serviceId parameter"
	msgServiceNotFound  = "service not found"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff?serviceId={id}
//
// Without serviceId the full roster is returned; with it, only the staff
// eligible for that service.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var serviceID int64
	if raw := r.URL.Query().Get("serviceId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /staff - Invalid serviceId: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = parsed
	}

	staff, err := h.service.ListStaff(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("GET /staff - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		default:
			h.logger.Error("GET /staff - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(staff))
}
