package list_businesses

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/service/businesses/models"
)

type BusinessService interface {
	ListOwn(ctx context.Context, userID uuid.UUID) (*models.BusinessListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
