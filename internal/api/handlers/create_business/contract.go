package create_business

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/service/businesses/models"
)

type BusinessService interface {
	Create(ctx context.Context, userID uuid.UUID, req *models.BusinessRequest) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
