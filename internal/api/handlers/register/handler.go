package register

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/service/accounts"
	"github.com/Andrez18/lummoo-core/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "Solicitud inválida"
	msgInvalidInput       = "Por favor completa todos los campos obligatorios. La contraseña debe tener al menos 6 caracteres"
	msgEmailRegistered    = "Este email ya está registrado"
	msgAccountCreated     = "¡Cuenta creada exitosamente!"
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

// RegisterResponse созданная учетная запись и сообщение
type RegisterResponse struct {
	Message string                  `json:"message"`
	Account *models.AccountResponse `json:"account"`
}

// Handle POST /api/v1/auth/register и POST /api/v1/admin/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST %s - Invalid request body: %v", r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	account, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, accounts.ErrEmailAlreadyRegistered):
			handlers.RespondConflict(w, msgEmailRegistered)
		default:
			h.logger.Error("POST %s - Failed to register account: %v", r.URL.Path, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST %s - Account created: id=%s", r.URL.Path, account.ID)
	handlers.RespondJSON(w, http.StatusCreated, RegisterResponse{Message: msgAccountCreated, Account: account})
}
