package create_booking

import (
	"errors"
	"net/http"

	"github.com/bellemadame/booking-service/internal/api/handlers"
	createBooking "github.com/bellemadame/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMissingField       = "missing required field"
	msgInvalidPhone       = "invalid phone number"
	msgPastDate           = "booking date is in the past"
	msgServiceNotFound    = "service not found"
	msgStaffNotFound      = "staff member not found"
	msgClosed             = "the salon is closed on this date"
	msgOutOfHours         = "requested time is outside opening hours"
	msgSlotTaken          = "this slot is already taken"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: staff_id=%d, date=%s, start=%s",
				req.StaffID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrClosed):
			h.logger.Warn("POST /bookings - Salon closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgClosed)

		case errors.Is(err, createBooking.ErrOutOfHours):
			h.logger.Warn("POST /bookings - Out of hours: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, createBooking.ErrMissingField):
			h.logger.Warn("POST /bookings - Missing field: %v", err)
			handlers.RespondBadRequest(w, msgMissingField)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Past date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: staff_id=%d, error=%v",
				req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, staff_id=%d, date=%s",
		result.BookingID, req.StaffID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
