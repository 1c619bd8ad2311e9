package delete_service

import (
	"context"

	"github.com/google/uuid"
)

type ServiceService interface {
	Delete(ctx context.Context, userID, serviceID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
