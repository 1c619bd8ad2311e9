package get_business

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/service/businesses"
)

const (
	msgUnauthorized     = "Debes iniciar sesión para continuar"
	msgBusinessNotFound = "Negocio no encontrado"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}
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

	business, err := h.service.GetOwn(r.Context(), userID, businessID)
	if err != nil {
		if errors.Is(err, businesses.ErrBusinessNotFound) {
			h.logger.Warn("GET /businesses/%s - Not found or not owned by user=%s", businessID, userID)
			handlers.RespondNotFoundDashboard(w, msgBusinessNotFound)
			return
		}
		h.logger.Error("GET /businesses/%s - Failed to get business: %v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, business)
}
