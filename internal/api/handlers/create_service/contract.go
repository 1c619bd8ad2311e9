package create_service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/service/services/models"
)

type ServiceService interface {
	Create(ctx context.Context, userID, businessID uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
