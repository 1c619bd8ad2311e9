package set_service_active

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

// Handle PATCH /api/v1/services/{serviceId}/active
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

	var req models.SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /services/%s/active - Invalid request body: %v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetActive(r.Context(), userID, serviceID, req.IsActive); err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			handlers.RespondNotFoundDashboard(w, msgServiceNotFound)
			return
		}
		h.logger.Error("PATCH /services/%s/active - Failed to toggle service: %v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, req)
}
