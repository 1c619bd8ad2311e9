package get_session

import (
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/service/profiles/models"
)

const msgUnauthorized = "Debes iniciar sesión para continuar"

type Handler struct {
	sessions SessionLoader
	logger   Logger
}

func NewHandler(sessions SessionLoader, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle GET /api/v1/session
// Профиль перечитывается из хранилища, поэтому запрос служит и обновлением сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	current := middleware.GetSession(r.Context())
	if current == nil {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	session, err := h.sessions.LoadSession(r.Context(), current.UserID, current.Email)
	if err != nil {
		h.logger.Error("GET /session - Failed to refresh session for user=%s: %v", current.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSession(session))
}
