package delete_service

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/service/services"
)

const (
	msgUnauthorized    = "Debes iniciar sesión para continuar"
	msgServiceNotFound = "Servicio no encontrado"
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

// Handle DELETE /api/v1/services/{serviceId}
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

	if err := h.service.Delete(r.Context(), userID, serviceID); err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			handlers.RespondNotFoundDashboard(w, msgServiceNotFound)
			return
		}
		h.logger.Error("DELETE /services/%s - Failed to delete service: %v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /services/%s - Service deleted by user=%s", serviceID, userID)
	handlers.RespondNoContent(w)
}
