package list_customers

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/service/customers/models"
)

type CustomerService interface {
	List(ctx context.Context, userID uuid.UUID) (*models.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
