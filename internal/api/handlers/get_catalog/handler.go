package get_catalog

import (
	"errors"
	"net/http"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/service/directory"
)

const msgBusinessNotFound = "Negocio no encontrado"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		handlers.RespondNotFound(w, msgBusinessNotFound)
		return
	}

	catalog, err := h.service.GetCatalog(r.Context(), businessID)
	if err != nil {
		if errors.Is(err, directory.ErrBusinessNotFound) {
			h.logger.Warn("GET /businesses/%s/catalog - Business not found", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)
			return
		}
		h.logger.Error("GET /businesses/%s/catalog - Failed to load catalog: %v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, catalog)
}
