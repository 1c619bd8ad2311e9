package create_service

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
	msgBusinessNotFound   = "Negocio no encontrado"
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

// Handle POST /api/v1/businesses/{businessId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		handlers.RespondNotFoundDashboard(w, msgBusinessNotFound)
		return
	}

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/%s/services - Invalid request body: %v", businessID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.service.Create(r.Context(), userID, businessID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, services.ErrBusinessNotFound):
			handlers.RespondNotFoundDashboard(w, msgBusinessNotFound)
		default:
			h.logger.Error("POST /businesses/%s/services - Failed to create service: %v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/%s/services - Service created: id=%s", businessID, service.ID)
	handlers.RespondJSON(w, http.StatusCreated, service)
}
