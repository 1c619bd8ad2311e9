package login

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/service/accounts"
	"github.com/Andrez18/lummoo-core/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "Solicitud inválida"
	msgInvalidCredentials = "Credenciales incorrectas"
)

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidCredentials), errors.Is(err, accounts.ErrInvalidInput):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		default:
			h.logger.Error("POST /auth/login - Failed to sign in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, token)
}
