package create_booking

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	createBooking "github.com/Andrez18/lummoo-core/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "Solicitud inválida"
	msgMissingFields       = "Por favor completa todos los campos obligatorios"
	msgBookingCreated      = "¡Reserva creada!"
	msgSlotNotAvailable    = "El horario seleccionado ya no está disponible"
	msgBusinessNotFound    = "Negocio no encontrado"
	msgServiceNotFound     = "Servicio no encontrado"
	msgInvalidDate         = "La fecha seleccionada ya pasó"
	msgBusinessClosed      = "El negocio está cerrado en la fecha seleccionada"
	msgOutsideBusinessHour = "El horario seleccionado está fuera del horario de atención"
	msgInvalidTimeSlot     = "El horario seleccionado no es válido"
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

// Handle POST /api/v1/businesses/{businessId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("POST /businesses/{businessId}/bookings - Invalid business id: %v", err)
		handlers.RespondNotFound(w, msgBusinessNotFound)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/%s/bookings - Invalid request body: %v", businessID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(businessID))
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /businesses/%s/bookings - Invalid input: %v", businessID, err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /businesses/%s/bookings - Slot not available: date=%s, start=%s",
				businessID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/%s/bookings - Business not found", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /businesses/%s/bookings - Service not found: service_id=%s", businessID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrBusinessClosed):
			handlers.RespondBadRequest(w, msgBusinessClosed)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			handlers.RespondBadRequest(w, msgOutsideBusinessHour)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("POST /businesses/%s/bookings - Failed to create booking: %v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/%s/bookings - Booking created successfully: booking_id=%s", businessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateBookingResponse{
		Message: msgBookingCreated,
		Booking: FromUseCaseResponse(result),
	})
}
