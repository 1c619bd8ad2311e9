package update_business

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/service/businesses/models"
)

type BusinessService interface {
	Update(ctx context.Context, userID, businessID uuid.UUID, req *models.BusinessRequest) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
