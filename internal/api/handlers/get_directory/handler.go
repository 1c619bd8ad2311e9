package get_directory

import (
	"net/http"
	"strings"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/directory?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))

	result, err := h.service.Search(r.Context(), term)
	if err != nil {
		h.logger.Error("GET /directory - Failed to load directory: q=%q, error=%v", term, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
