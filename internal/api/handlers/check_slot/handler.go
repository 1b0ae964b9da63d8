package check_slot

import (
	"errors"
	"net/http"

	"github.com/bellemadame/booking-service/internal/api/handlers"
	"github.com/bellemadame/booking-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgServiceNotFound    = "service not found"
	msgStaffNotFound      = "staff member not found"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	check, err := req.ToServiceCheck()
	if err != nil {
		h.logger.Warn("POST /bookings/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	status, err := h.service.CheckSlot(r.Context(), check)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrServiceNotFound):
			h.logger.Warn("POST /bookings/check - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookings.ErrStaffNotFound):
			h.logger.Warn("POST /bookings/check - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/check - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SlotStatusResponse{
		Available: status.Available,
		Reason:    status.Reason,
	})
}
