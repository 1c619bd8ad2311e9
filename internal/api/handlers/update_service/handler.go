package update_service

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/service/services"
	"github.com/Andrez18/lummoo-core/internal/service/services/models"
)

const (
	msgUnauthorized       = "Debes iniciar sesión para continuar"
	msgInvalidRequestBody = "Solicitud inválida"
	msgInvalidInput       = "El nombre es obligatorio, el precio no puede ser negativo y la duración mínima es 15 minutos"
	msgServiceNotFound    = "Servicio no encontrado"
)

type Handler struct {
	service ServiceService
	logger  Logger
}

func NewHandler(service ServiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	serviceID, err := handlers.PathUUID(r, "serviceId")
	if err != nil {
		handlers.RespondNotFoundDashboard(w, msgServiceNotFound)
		return
	}

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/%s - Invalid request body: %v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.service.Update(r.Context(), userID, serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, services.ErrServiceNotFound), errors.Is(err, services.ErrBusinessNotFound):
			handlers.RespondNotFoundDashboard(w, msgServiceNotFound)
		default:
			h.logger.Error("PUT /services/%s - Failed to update service: %v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, service)
}
