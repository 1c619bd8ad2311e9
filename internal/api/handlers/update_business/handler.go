package update_business

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
	msgInvalidInput       = "Revisa los datos del negocio y el horario de atención"
	msgBusinessNotFound   = "Negocio no encontrado"
	msgSettingsSaved      = "Configuración guardada"
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

// UpdateBusinessResponse обновленный бизнес и сообщение
type UpdateBusinessResponse struct {
	Message  string                   `json:"message"`
	Business *models.BusinessResponse `json:"business"`
}

// Handle PUT /api/v1/businesses/{businessId}
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

	var req models.BusinessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/%s - Invalid request body: %v", businessID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	business, err := h.service.Update(r.Context(), userID, businessID, &req)
	if err != nil {
		switch {
		case errors.Is(err, businesses.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/%s - Invalid input: %v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, businesses.ErrBusinessNotFound):
			handlers.RespondNotFoundDashboard(w, msgBusinessNotFound)
		default:
			h.logger.Error("PUT /businesses/%s - Failed to update business: %v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/%s - Settings saved by user=%s", businessID, userID)
	handlers.RespondJSON(w, http.StatusOK, UpdateBusinessResponse{Message: msgSettingsSaved, Business: business})
}
