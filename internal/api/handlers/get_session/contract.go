package get_session

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

type SessionLoader interface {
	LoadSession(ctx context.Context, userID uuid.UUID, email string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
