package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	getAvailableSlots "github.com/Andrez18/lummoo-core/internal/usecase/get_available_slots"
)

const (
	msgBusinessNotFound = "Negocio no encontrado"
	msgServiceNotFound  = "Servicio no encontrado"
	msgMissingDate      = "La fecha es obligatoria"
	msgInvalidDate      = "Formato de fecha inválido, se espera AAAA-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/services/{serviceId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid business id: %v", err)
		handlers.RespondNotFound(w, msgBusinessNotFound)
		return
	}

	serviceID, err := handlers.PathUUID(r, "serviceId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid service id: %v", err)
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		BusinessID: businessID,
		ServiceID:  serviceID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: business=%s, service=%s, error=%v",
				businessID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - business=%s, service=%s, date=%s, slots=%d",
		businessID, serviceID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
