package update_profile

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/service/profiles"
	"github.com/Andrez18/lummoo-core/internal/service/profiles/models"
)

const (
	msgUnauthorized       = "Debes iniciar sesión para continuar"
	msgInvalidRequestBody = "Solicitud inválida"
	msgInvalidInput       = "Datos del perfil inválidos"
	msgProfileNotFound    = "Perfil no encontrado"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, profiles.ErrProfileNotFound):
			handlers.RespondNotFoundDashboard(w, msgProfileNotFound)
		default:
			h.logger.Error("PUT /profile - Failed to update profile for user=%s: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile - Profile updated: user=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
