package set_service_active

import (
	"context"

	"github.com/google/uuid"
)

type ServiceService interface {
	SetActive(ctx context.Context, userID, serviceID uuid.UUID, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
