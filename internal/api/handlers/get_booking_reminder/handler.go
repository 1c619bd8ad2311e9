package get_booking_reminder

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/service/bookings"
)

const (
	msgUnauthorized    = "Debes iniciar sesión para continuar"
	msgBookingNotFound = "Reserva no encontrada"
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

// Handle GET /api/v1/bookings/{bookingId}/reminder
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

	reminder, err := h.service.Reminder(r.Context(), userID, bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			handlers.RespondNotFoundDashboard(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /bookings/%s/reminder - Failed to build reminder: %v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, reminder)
}
