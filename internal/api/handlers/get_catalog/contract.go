package get_catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/service/directory/models"
)

type CatalogService interface {
	GetCatalog(ctx context.Context, businessID uuid.UUID) (*models.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
