package create_business

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/service/businesses"
	"github.com/Andrez18/lummoo-core/internal/service/businesses/models"
)

const (
	msgUnauthorized       = "Debes iniciar sesión para continuar"
	msgInvalidRequestBody = "Solicitud inválida"
	msgInvalidInput       = "Revisa los datos del negocio: nombre, email, teléfono y dirección son obligatorios"
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

// Handle POST /api/v1/businesses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.BusinessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	business, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, businesses.ErrInvalidInput) {
			h.logger.Warn("POST /businesses - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /businesses - Failed to create business for user=%s: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /businesses - Business created: id=%s, owner=%s", business.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, business)
}
