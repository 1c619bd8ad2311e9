package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/service/bookings"
	"github.com/Andrez18/lummoo-core/internal/service/bookings/models"
)

const (
	msgUnauthorized       = "Debes iniciar sesión para continuar"
	msgInvalidRequestBody = "Solicitud inválida"
	msgInvalidStatus      = "Estado de reserva inválido"
	msgInvalidTransition  = "No se puede cambiar la reserva a ese estado"
	msgBookingNotFound    = "Reserva no encontrada"
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

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := handlers.PathUUID(r, "bookingId")
	if err != nil {
		handlers.RespondNotFoundDashboard(w, msgBookingNotFound)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%s/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), userID, bookingID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, bookings.ErrInvalidTransition):
			handlers.RespondConflict(w, msgInvalidTransition)
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFoundDashboard(w, msgBookingNotFound)
		default:
			h.logger.Error("PATCH /bookings/%s/status - Failed to update status: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%s/status - Status changed to %s by user=%s", bookingID, booking.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
